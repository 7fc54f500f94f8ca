package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/esports-tracker/internal/model"
)

func viewCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Manage navigation views and custom views",
	}
	cmd.AddCommand(viewListCmd(flags))
	cmd.AddCommand(viewAddCmd(flags))
	cmd.AddCommand(viewUpdateCmd(flags))
	cmd.AddCommand(viewDeleteCmd(flags))
	cmd.AddCommand(viewVisibilityCmd(flags, "show", true))
	cmd.AddCommand(viewVisibilityCmd(flags, "hide", false))
	cmd.AddCommand(sectionCmd(flags))
	cmd.AddCommand(fieldCmd(flags))
	return cmd
}

func viewListCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom views with their visibility",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			custom := s.store.CustomViews()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), custom)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tVISIBLE\tSECTIONS")
			for _, v := range s.store.NavigableViews() {
				fmt.Fprintf(w, "%s\tbuilt-in\t%t\t-\n", v.Name, s.store.IsViewVisible(v.Name))
			}
			for _, v := range custom {
				fmt.Fprintf(w, "%s (%s)\tcustom\t%t\t%d\n", v.Name, v.ID, s.store.IsViewVisible(v.Name), len(v.Sections))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print custom views as JSON")
	return cmd
}

func viewAddCmd(flags *globalFlags) *cobra.Command {
	var content string
	cmd := &cobra.Command{
		Use:   "add <id> <name>",
		Short: "Add a custom view",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			view, _, err := s.store.AddCustomView(model.CustomView{ID: args[0], Name: args[1], Content: content})
			if err != nil {
				return err
			}
			cmd.Printf("View %s added.\n", view.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "Free text shown on the view")
	return cmd
}

func viewUpdateCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a custom view or change its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			p, err := s.store.UpdateCustomView(args[0], model.CustomViewUpdate{
				Name:    stringFlag(cmd, "name"),
				Content: stringFlag(cmd, "content"),
			})
			if err != nil {
				return err
			}
			report(cmd, p, "View updated.")
			return nil
		},
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("content", "", "New content")
	return cmd
}

func viewDeleteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.DeleteCustomView(args[0]), "View deleted.")
			return nil
		},
	}
}

func viewVisibilityCmd(flags *globalFlags, use string, visible bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: fmt.Sprintf("Set a view's visibility to %t", visible),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.SetViewVisibility(args[0], visible), "Visibility updated.")
			return nil
		},
	}
}

func sectionCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage sections of a custom view",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <view-id> <name>",
		Short: "Add a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			section, _, err := s.store.AddSection(args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Println(section.ID)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rename <view-id> <section-id> <name>",
		Short: "Rename a section",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			p, err := s.store.UpdateSection(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			report(cmd, p, "Section renamed.")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <view-id> <section-id>",
		Short: "Delete a section and its fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.DeleteSection(args[0], args[1]), "Section deleted.")
			return nil
		},
	})
	return cmd
}

func fieldCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Manage fields of a section",
	}

	var fieldType, fieldID string
	add := &cobra.Command{
		Use:   "add <view-id> <section-id> <name>",
		Short: "Add an empty field",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			field, _, err := s.store.AddField(args[0], args[1], model.Field{ID: fieldID, Name: args[2], Type: fieldType})
			if err != nil {
				return err
			}
			cmd.Println(field.ID)
			return nil
		},
	}
	add.Flags().StringVar(&fieldType, "type", "", "Field type, e.g. text or number")
	add.Flags().StringVar(&fieldID, "id", "", "Field id (generated when empty)")
	cmd.AddCommand(add)

	set := &cobra.Command{
		Use:   "set <view-id> <section-id> <field-id>",
		Short: "Update a field; only the given flags change",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			p, err := s.store.UpdateField(args[0], args[1], args[2], model.FieldUpdate{
				Name:  stringFlag(cmd, "name"),
				Type:  stringFlag(cmd, "type"),
				Value: stringFlag(cmd, "value"),
			})
			if err != nil {
				return err
			}
			report(cmd, p, "Field updated.")
			return nil
		},
	}
	set.Flags().String("name", "", "Field name")
	set.Flags().String("type", "", "Field type")
	set.Flags().String("value", "", "Field value")
	cmd.AddCommand(set)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <view-id> <section-id> <field-id>",
		Short: "Delete a field",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.DeleteField(args[0], args[1], args[2]), "Field deleted.")
			return nil
		},
	})
	return cmd
}
