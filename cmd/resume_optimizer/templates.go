package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/template"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var templatesCommand = &cobra.Command{
	Use:   "templates",
	Short: "Manage stored job templates",
}

var templatesDir string

func init() {
	templatesCommand.PersistentFlags().StringVar(&templatesDir, "dir", config.DefaultTemplateDir, "Directory holding job templates")

	templatesCommand.AddCommand(templatesListCommand)
	templatesCommand.AddCommand(templatesShowCommand)
	templatesCommand.AddCommand(templatesCreateCommand)
	templatesCommand.AddCommand(templatesDeleteCommand)
	templatesCommand.AddCommand(templatesSearchCommand)
	templatesCommand.AddCommand(templatesCategoriesCommand)
	rootCmd.AddCommand(templatesCommand)
}

func openTemplateStore() (*template.Store, error) {
	return template.NewStore(templatesDir)
}

var templatesListCommand = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := openTemplateStore()
		if err != nil {
			return err
		}
		infos, err := store.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No templates found.")
			return nil
		}
		printTemplateInfos(infos)
		return nil
	},
}

var templatesShowCommand = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one template as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := openTemplateStore()
		if err != nil {
			return err
		}
		job, err := store.Get(args[0])
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(job)
	},
}

var templatesCreateCommand = &cobra.Command{
	Use:   "create <id> <job-json-file>",
	Short: "Create a template from a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading job JSON: %w", err)
		}
		var job types.JobRequirement
		if err := json.Unmarshal(data, &job); err != nil {
			return fmt.Errorf("parsing job JSON: %w", err)
		}

		store, err := openTemplateStore()
		if err != nil {
			return err
		}
		if err := store.Create(args[0], job); err != nil {
			return err
		}
		fmt.Printf("Created template: %s\n", args[0])
		return nil
	},
}

var templatesDeleteCommand = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := openTemplateStore()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted template: %s\n", args[0])
		return nil
	},
}

var templatesSearchCommand = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search templates by title, company, or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := openTemplateStore()
		if err != nil {
			return err
		}
		infos, err := store.Search(args[0])
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No matching templates.")
			return nil
		}
		printTemplateInfos(infos)
		return nil
	},
}

var templatesCategoriesCommand = &cobra.Command{
	Use:   "categories",
	Short: "Group template IDs by job category",
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := openTemplateStore()
		if err != nil {
			return err
		}
		categories, err := store.Categories()
		if err != nil {
			return err
		}

		names := make([]string, 0, len(categories))
		for name := range categories {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			ids := categories[name]
			if len(ids) == 0 {
				continue
			}
			fmt.Printf("%s:\n", name)
			for _, id := range ids {
				fmt.Printf("  %s\n", id)
			}
		}
		return nil
	},
}

func printTemplateInfos(infos []template.Info) {
	for _, info := range infos {
		fmt.Printf("%-20s %s @ %s (%d skills, %d requirements)\n",
			info.ID, info.Title, info.Company, info.SkillsCount, info.RequirementsCount)
	}
}
