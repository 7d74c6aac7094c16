package main

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

const manifestVersion = 1

type widgetsCmd struct {
	Out string `type:"path" help:"Write the definitions and default layout to this YAML manifest."`
}

type widgetManifest struct {
	Version     int                    `yaml:"version"`
	Definitions []erp.WidgetDefinition `yaml:"definitions"`
	Layout      []erp.Widget           `yaml:"layout"`
}

func (cmd *widgetsCmd) Run(g *Globals) error {
	defs := erp.DefaultRegistry().Definitions()
	if cmd.Out == "" {
		tw := tabwriter.NewWriter(g.writer(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tNAME\tCATEGORY")
		for _, def := range defs {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", def.Code, def.Name, def.Category)
		}
		return tw.Flush()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(widgetManifest{Version: manifestVersion, Definitions: defs, Layout: erp.DefaultLayout()}); err != nil {
		return fmt.Errorf("erpctl: encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("erpctl: encode manifest: %w", err)
	}
	if err := atomic.WriteFile(cmd.Out, &buf); err != nil {
		return fmt.Errorf("erpctl: write manifest %s: %w", cmd.Out, err)
	}
	fmt.Fprintf(g.writer(), "✓ Wrote %d widget definitions to %s\n", len(defs), cmd.Out)
	return nil
}
