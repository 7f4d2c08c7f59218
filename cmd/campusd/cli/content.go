package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sssbpuc/campusd/internal/model"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Import and export site content",
		Long:  "Move site content sections between the datastore and a YAML file, for seeding and backups.",
	}

	cmd.AddCommand(newContentExportCmd())
	cmd.AddCommand(newContentImportCmd())

	return cmd
}

// ---------- content export ----------

func newContentExportCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all content sections to YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return fmt.Errorf("open datastore: %w", err)
			}
			defer st.Close()

			sections, err := st.ListContentSections(context.Background())
			if err != nil {
				return fmt.Errorf("list content sections: %w", err)
			}

			out := make(map[string]interface{}, len(sections))
			for _, s := range sections {
				var v interface{}
				if err := json.Unmarshal(s.Data, &v); err != nil {
					return fmt.Errorf("section %q holds invalid JSON: %w", s.Section, err)
				}
				out[s.Section] = v
			}

			data, err := yaml.Marshal(out)
			if err != nil {
				return fmt.Errorf("encode content: %w", err)
			}

			if outFile == "" || outFile == "-" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", outFile, err)
			}
			fmt.Printf("Exported %d content sections to %s\n", len(sections), outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "-", "Output file (default stdout)")

	return cmd
}

// ---------- content import ----------

func newContentImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import content sections from YAML",
		Long:  "Read a YAML file of section name to payload and upsert each section into the datastore.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			var in map[string]interface{}
			if err := yaml.Unmarshal(data, &in); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			st, err := openStore()
			if err != nil {
				return fmt.Errorf("open datastore: %w", err)
			}
			defer st.Close()

			ctx := context.Background()
			for section, v := range in {
				payload, err := json.Marshal(v)
				if err != nil {
					return fmt.Errorf("section %q: %w", section, err)
				}
				c := &model.ContentSection{Section: section, Data: payload}
				if err := st.UpsertContentSection(ctx, c); err != nil {
					return fmt.Errorf("store section %q: %w", section, err)
				}
			}

			fmt.Printf("Imported %d content sections\n", len(in))
			return nil
		},
	}

	return cmd
}
