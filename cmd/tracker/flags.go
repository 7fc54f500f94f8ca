package main

import (
	"github.com/spf13/cobra"

	"github.com/ytget/esports-tracker/internal/appstate"
	"github.com/ytget/esports-tracker/internal/platform"
)

// Partial updates only carry flags the user actually passed.

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

// imageFlag returns the image value from name, or from name+"-file" read as
// a data URL.
func imageFlag(cmd *cobra.Command, name string) (*string, error) {
	if path := stringFlag(cmd, name+"-file"); path != nil {
		url, err := platform.ReadImageDataURL(*path)
		if err != nil {
			return nil, err
		}
		return &url, nil
	}
	return stringFlag(cmd, name), nil
}

func addImageFlags(cmd *cobra.Command, name, usage string) {
	cmd.Flags().String(name, "", usage+" (URL or data URL)")
	cmd.Flags().String(name+"-file", "", usage+" read from an image file")
	cmd.MarkFlagsMutuallyExclusive(name, name+"-file")
}

func report(cmd *cobra.Command, p *appstate.Pending, done string) {
	if p.Applied() {
		cmd.Println(done)
		return
	}
	cmd.Println("Nothing changed.")
}
