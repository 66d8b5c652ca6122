package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"

	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/types"
)

const (
	FlagAPI    = "api"
	FlagOffset = "offset"
	FlagLimit  = "limit"

	DefaultAPI = "http://localhost:8080"
)

// GetQueryCmd returns the cli query commands for the ajo module. Queries are
// answered by the ajo HTTP gateway.
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the ajo module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryPool(),
		CmdQueryPools(),
		CmdQueryMembers(),
		CmdQueryMember(),
		CmdQueryBalance(),
		CmdQueryRotation(),
		CmdQueryProgress(),
		CmdQueryYield(),
	)

	return cmd
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

// fetch GETs path from the gateway and pretty prints the JSON body
func fetch(cmd *cobra.Command, path string, query url.Values) error {
	base, _ := cmd.Flags().GetString(FlagAPI)
	u := strings.TrimRight(base, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	resp, err := httpClient.Get(u)
	if err != nil {
		return fmt.Errorf("query %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("query %s: %s: %s", u, resp.Status, strings.TrimSpace(string(body)))
	}

	var out interface{}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	output, _ := json.MarshalIndent(out, "", "  ")
	cmd.Println(string(output))
	return nil
}

func queryCmd(use, short string, nargs int, path func(args []string) (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := path(args)
			if err != nil {
				return err
			}
			return fetch(cmd, p, nil)
		},
	}

	cmd.Flags().String(FlagAPI, DefaultAPI, "ajo gateway base URL")
	return cmd
}

func poolPath(suffix string) func(args []string) (string, error) {
	return func(args []string) (string, error) {
		id, err := parsePoolID(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("/ajo/v1/pools/%d%s", id, suffix), nil
	}
}

// CmdQueryPool returns the command to query one pool
func CmdQueryPool() *cobra.Command {
	return queryCmd("pool [pool-id]", "Query a pool", 1, poolPath(""))
}

// CmdQueryPools returns the command to list pools
func CmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, _ := cmd.Flags().GetUint64(FlagOffset)
			limit, _ := cmd.Flags().GetUint64(FlagLimit)
			q := url.Values{}
			q.Set(FlagOffset, fmt.Sprint(offset))
			q.Set(FlagLimit, fmt.Sprint(limit))
			return fetch(cmd, "/ajo/v1/pools", q)
		},
	}

	cmd.Flags().String(FlagAPI, DefaultAPI, "ajo gateway base URL")
	cmd.Flags().Uint64(FlagOffset, 0, "pools to skip")
	cmd.Flags().Uint64(FlagLimit, 50, "maximum pools to return")
	return cmd
}

// CmdQueryMembers returns the command to list pool members in admission order
func CmdQueryMembers() *cobra.Command {
	return queryCmd("members [pool-id]", "List pool members", 1, poolPath("/members"))
}

// CmdQueryMember returns the command to query one member
func CmdQueryMember() *cobra.Command {
	return queryCmd("member [pool-id] [address]", "Query a pool member", 2, func(args []string) (string, error) {
		p, err := poolPath("/members/")(args)
		if err != nil {
			return "", err
		}
		return p + url.PathEscape(args[1]), nil
	})
}

// CmdQueryBalance returns the command to query the pool balance
func CmdQueryBalance() *cobra.Command {
	return queryCmd("balance [pool-id]", "Query the pool balance", 1, poolPath("/balance"))
}

// CmdQueryRotation returns the command to query rotation status
func CmdQueryRotation() *cobra.Command {
	return queryCmd("rotation [pool-id]", "Query rotational pool status", 1, poolPath("/rotation"))
}

// CmdQueryProgress returns the command to query target progress
func CmdQueryProgress() *cobra.Command {
	return queryCmd("progress [pool-id]", "Query target pool progress", 1, poolPath("/progress"))
}

// CmdQueryYield returns the command to query flexible pool yield
func CmdQueryYield() *cobra.Command {
	return queryCmd("yield [pool-id]", "Query flexible pool yield, including pending yield", 1, poolPath("/yield"))
}
