package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/go-appsec/strudel-tools/strudelurl/patterndiff"
	"github.com/go-appsec/strudel-tools/strudelurl/patternurl"
)

func (s *Server) encodeTool() mcp.Tool {
	return mcp.NewTool("encode_pattern",
		mcp.WithDescription("Encode Strudel pattern code into a shareable strudel.cc link. The code is base64 encoded into the URL fragment."),
		mcp.WithString("code", mcp.Required(), mcp.Description("Pattern code to encode")),
	)
}

func (s *Server) decodeTool() mcp.Tool {
	return mcp.NewTool("decode_pattern",
		mcp.WithDescription("Decode a strudel.cc link, or just its fragment, back into pattern code."),
		mcp.WithString("url", mcp.Required(), mcp.Description("Full link or bare fragment")),
	)
}

func (s *Server) diffTool() mcp.Tool {
	return mcp.NewTool("diff_patterns",
		mcp.WithDescription(`Decode two strudel.cc links and return a unified diff of their code.
Returns "Patterns are identical." when both carry the same code.`),
		mcp.WithString("url_a", mcp.Required(), mcp.Description("First link or fragment")),
		mcp.WithString("url_b", mcp.Required(), mcp.Description("Second link or fragment")),
		mcp.WithNumber("context", mcp.Description("Lines of context around each change (default: 3)")),
	)
}

func (s *Server) handleEncode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return errorResult("code is required"), nil
	}

	link := patternurl.EncodeWithBase(s.baseURL, code)
	s.logger.Printf("mcp/encode_pattern: code_len=%d url_len=%d", len(code), len(link))
	return mcp.NewToolResultText(link), nil
}

func (s *Server) handleDecode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	link, err := req.RequireString("url")
	if err != nil {
		return errorResult("url is required"), nil
	}

	code, err := patternurl.Decode(link)
	if err != nil {
		s.logger.Printf("mcp/decode_pattern: %v", err)
		return errorResult(err.Error()), nil
	}

	s.logger.Printf("mcp/decode_pattern: code_len=%d", len(code))
	return mcp.NewToolResultText(code), nil
}

func (s *Server) handleDiff(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	linkA, err := req.RequireString("url_a")
	if err != nil {
		return errorResult("url_a is required"), nil
	}
	linkB, err := req.RequireString("url_b")
	if err != nil {
		return errorResult("url_b is required"), nil
	}

	res, err := patterndiff.Compare(linkA, linkB, req.GetInt("context", patterndiff.DefaultContext))
	if err != nil {
		s.logger.Printf("mcp/diff_patterns: %v", err)
		return errorResult(err.Error()), nil
	}

	s.logger.Printf("mcp/diff_patterns: same=%v added=%d removed=%d", res.Same(), res.Added, res.Removed)
	if res.Same() {
		return mcp.NewToolResultText("Patterns are identical."), nil
	} else if res.Diff == "" {
		return mcp.NewToolResultText("Patterns differ only in trailing whitespace."), nil
	}
	return mcp.NewToolResultText(res.Diff), nil
}
