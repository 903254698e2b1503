package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/wixoss/internal/cache"
	"github.com/peterkuimelis/wixoss/internal/card"
	"github.com/peterkuimelis/wixoss/internal/feature"
)

// activeSession is the singleton session (one per stdio process).
var activeSession = NewSession(nil, nil)

// SetSession replaces the session the tools use, set by main.
func SetSession(s *Session) {
	activeSession = s
}

// RegisterTools adds all card tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(parseCardTool(), handleParseCard)
	s.AddTool(lookupCardTool(), handleLookupCard)
	s.AddTool(featureIndexTool(), handleFeatureIndex)
	s.AddTool(featureFlagsTool(), handleFeatureFlags)
}

// --- Tool definitions ---

func parseCardTool() mcp.Tool {
	return mcp.NewTool("parse_card",
		mcp.WithDescription("Parse one WIXOSS card detail HTML fragment into a card record with normalized skill text and feature tags."),
		mcp.WithString("html", mcp.Required(), mcp.Description("The card detail HTML (the .cardDetail element or a page containing it)")),
		mcp.WithString("kind", mcp.Description("Card kind slug such as 'signi' or 'lrig-assist'. Detected from the card type field when omitted.")),
	)
}

func lookupCardTool() mcp.Tool {
	return mcp.NewTool("lookup_card",
		mcp.WithDescription("Read a card from the local cache of downloaded detail pages and parse it. Never fetches from the network."),
		mcp.WithString("card_no", mcp.Required(), mcp.Description("Card number (e.g. 'WXDi-P14-061') or a card detail URL")),
	)
}

func featureIndexTool() mcp.Tool {
	return mcp.NewTool("feature_index",
		mcp.WithDescription("List every feature tag with its display label and bit value. Read-only."),
	)
}

func featureFlagsTool() mcp.Tool {
	return mcp.NewTool("feature_flags",
		mcp.WithDescription("Combine feature tag names into one bit mask, as used to filter cards by features."),
		mcp.WithString("tags", mcp.Required(), mcp.Description("Space or comma separated tag names (e.g. 'DoubleCrush Lancer')")),
	)
}

// --- Tool handlers ---

func handleParseCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	html := request.GetString("html", "")
	if strings.TrimSpace(html) == "" {
		return mcp.NewToolResultError("html must not be empty"), nil
	}

	kind := card.KindUnknown
	if slug := request.GetString("kind", ""); slug != "" {
		k, ok := card.ParseKind(slug)
		if !ok {
			return mcp.NewToolResultErrorf("Unknown kind '%s'. Use one of: %s.", slug, kindSlugs()), nil
		}
		kind = k
	}

	c, err := activeSession.parse(kind, html)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to parse card: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(c)), nil
}

func handleLookupCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref := request.GetString("card_no", "")
	if strings.TrimSpace(ref) == "" {
		return mcp.NewToolResultError("card_no must not be empty"), nil
	}

	q, err := cache.Resolve(ref)
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid card reference: %v", err), nil
	}
	c, err := activeSession.Lookup(q.CardNo)
	if err != nil {
		return mcp.NewToolResultErrorf("Lookup failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(c)), nil
}

func handleFeatureIndex(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(respondJSON(feature.Index())), nil
}

// FlagsResponse is the result of feature_flags.
type FlagsResponse struct {
	Features feature.Set `json:"features"`
	Flags    uint64      `json:"flags"`
}

func handleFeatureFlags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := strings.FieldsFunc(request.GetString("tags", ""), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	set, err := feature.ParseNames(names...)
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(FlagsResponse{Features: set, Flags: set.Flags()})), nil
}

func kindSlugs() string {
	var slugs []string
	for _, k := range card.Kinds() {
		slugs = append(slugs, k.Slug())
	}
	return strings.Join(slugs, ", ")
}
