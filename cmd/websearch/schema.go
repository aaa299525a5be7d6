package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	sdkschema "github.com/google/jsonschema-go/jsonschema"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/websearch/mcpserver"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schemas of the MCP tool inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := toolSchemas()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

// toolSchemas returns the input schemas keyed by tool name. Descriptions and
// bounds come from the schemas the MCP server advertises.
func toolSchemas() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	out := map[string]*jsonschema.Schema{
		mcpserver.ToolWebSearch: r.Reflect(&mcpserver.SearchInput{}),
		mcpserver.ToolWebFetch:  r.Reflect(&mcpserver.FetchInput{}),
	}
	advertised := mcpserver.InputSchemas()
	for name, schema := range out {
		schema.Title = name
		annotate(schema, advertised[name])
	}
	return json.MarshalIndent(out, "", "  ")
}

func annotate(dst *jsonschema.Schema, src *sdkschema.Schema) {
	if src == nil || dst.Properties == nil {
		return
	}
	for pair := dst.Properties.Oldest(); pair != nil; pair = pair.Next() {
		p, ok := src.Properties[pair.Key]
		if !ok {
			continue
		}
		pair.Value.Description = p.Description
		if p.Minimum != nil {
			pair.Value.Minimum = number(*p.Minimum)
		}
		if p.Maximum != nil {
			pair.Value.Maximum = number(*p.Maximum)
		}
	}
}

func number(f float64) json.Number {
	return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
}
