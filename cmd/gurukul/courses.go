package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meera/gurukul/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored courses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		courses, err := st.ListCourses()
		if err != nil {
			return err
		}
		if len(courses) == 0 {
			fmt.Println("No stored courses.")
			return nil
		}

		fmt.Printf("%-40s %-10s %-8s %s\n", "ID", "LANGUAGE", "MODULES", "CREATED")
		for _, c := range courses {
			fmt.Printf("%-40s %-10s %-8d %s\n", c.ID, c.Language, c.Modules, c.Created)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show the structure of a stored course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		doc, err := st.LoadCourse(args[0])
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("course %s not found", args[0])
		}

		fmt.Printf("%s (%s)\n%s\n\n", doc.Topic, doc.Language, doc.Description)
		for _, m := range doc.Modules {
			fmt.Printf("Module %s: %s\n", m.Number, m.Title)
			for _, s := range m.Sessions {
				fmt.Printf("  Session %s: %s (%d sections, %d questions)\n",
					s.Number, s.Title, len(s.Sections), len(s.Assessment.Questions))
			}
		}
		return nil
	},
}

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <course-id>",
	Short: "Export a stored course as YAML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		doc, err := st.LoadCourse(args[0])
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("course %s not found", args[0])
		}

		data, err := store.Export(doc, exportFormat)
		if err != nil {
			return err
		}

		if exportOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exportOut, data, 0644); err != nil {
			return err
		}
		fmt.Printf("Exported %s to %s\n", args[0], exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "export format: yaml or json")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default stdout)")
}
