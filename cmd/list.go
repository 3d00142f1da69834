package cmd

import (
	"bytes"

	"github.com/hydrogencg/go-raycaster/pkg/integrator"
	"github.com/hydrogencg/go-raycaster/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the available integrators.
func ListIntegrators(ctx *cli.Context) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Integrator", "Description"})
	for _, info := range integrator.Registry() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	logger.Noticef("available integrators\n%s", buf.String())
	return nil
}

// List the available scenes.
func ListScenes(ctx *cli.Context) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.Registry() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
