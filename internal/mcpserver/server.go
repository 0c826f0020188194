// Package mcpserver exposes the dashboard lookups as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/daap14/wcdash/internal/dashboard"
	"github.com/daap14/wcdash/internal/worldcup"
)

const serverName = "wcdash"

// Catalog is the team table the tools read.
type Catalog interface {
	Team(name string) (worldcup.Team, error)
	Teams() []worldcup.Team
	Years() []int
	Finalists(year int) (winner, runnerUp *worldcup.Team)
}

// CountryStatusArgs are the arguments of the country_status tool.
type CountryStatusArgs struct {
	Country string `json:"country" jsonschema:"Team name, e.g. Brazil (required)"`
}

// YearResultArgs are the arguments of the year_result tool.
type YearResultArgs struct {
	Year int `json:"year" jsonschema:"Tournament year, e.g. 1998 (required)"`
}

// NoArgs is used by tools that take no arguments.
type NoArgs struct{}

// Tools implements the tool handlers over a catalog and view model.
type Tools struct {
	catalog Catalog
	views   *dashboard.ViewModel
}

// NewTools creates the tool set.
func NewTools(catalog Catalog, views *dashboard.ViewModel) *Tools {
	return &Tools{catalog: catalog, views: views}
}

// NewServer registers every tool on a new MCP server.
func NewServer(tools *Tools, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "country_status",
		Description: "How many times a national team has won the FIFA World Cup",
	}, tools.CountryStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "year_result",
		Description: "Winner and runner-up of the FIFA World Cup final in a given year",
	}, tools.YearResult)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_years",
		Description: "Every year with a World Cup final in the table, ascending",
	}, tools.ListYears)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_teams",
		Description: "Every national team in the table with wins, runner-up finishes and years",
	}, tools.ListTeams)

	return server
}

// NewHandler serves the MCP server over streamable HTTP with JSON responses.
func NewHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

type teamResult struct {
	Name          string `json:"name"`
	ISO           string `json:"iso"`
	Wins          int    `json:"wins"`
	RunnersUp     int    `json:"runners_up"`
	YearsWon      []int  `json:"years_won"`
	YearsRunnerUp []int  `json:"years_runner_up"`
}

func toTeamResult(t worldcup.Team) *teamResult {
	return &teamResult{
		Name:          t.Name,
		ISO:           t.ISO,
		Wins:          t.Wins,
		RunnersUp:     t.RunnersUp,
		YearsWon:      t.YearsWon,
		YearsRunnerUp: t.YearsRunnerUp,
	}
}

// CountryStatus handles the country_status tool.
func (t *Tools) CountryStatus(_ context.Context, _ *mcp.CallToolRequest, args CountryStatusArgs) (*mcp.CallToolResult, any, error) {
	sel := dashboard.Selection{Country: args.Country}
	if !sel.HasCountry() {
		return toolError(fmt.Errorf("country is required")), nil, nil
	}

	out := map[string]any{
		"status": t.views.Status(sel),
		"team":   nil,
	}
	if team, err := t.catalog.Team(sel.CountryName()); err == nil {
		out["team"] = toTeamResult(team)
	}
	return toolJSON(out)
}

// YearResult handles the year_result tool.
func (t *Tools) YearResult(_ context.Context, _ *mcp.CallToolRequest, args YearResultArgs) (*mcp.CallToolResult, any, error) {
	if args.Year < 1 {
		return toolError(fmt.Errorf("year must be a positive integer")), nil, nil
	}

	spec := t.views.Map(dashboard.Selection{Year: &args.Year})
	out := map[string]any{
		"year":      args.Year,
		"title":     spec.Title,
		"winner":    nil,
		"runner_up": nil,
	}
	winner, runnerUp := t.catalog.Finalists(args.Year)
	if winner != nil {
		out["winner"] = winner.Name
	}
	if runnerUp != nil {
		out["runner_up"] = runnerUp.Name
	}
	return toolJSON(out)
}

// ListYears handles the list_years tool.
func (t *Tools) ListYears(_ context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(map[string]any{"years": t.catalog.Years()})
}

// ListTeams handles the list_teams tool.
func (t *Tools) ListTeams(_ context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, any, error) {
	teams := t.catalog.Teams()
	out := make([]*teamResult, 0, len(teams))
	for _, team := range teams {
		out = append(out, toTeamResult(team))
	}
	return toolJSON(map[string]any{"teams": out})
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
