package cmd

import (
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MagicAardvark/race-results-sub000/pkg/classing"
	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Manage the class configuration database",
}

var classesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured classes",
	RunE: func(cmd *cobra.Command, args []string) error {
		classes, err := loadClassConfig()
		if err != nil {
			return err
		}

		names := make([]string, 0, len(classes))
		for name := range classes {
			names = append(names, name)
		}
		sort.Strings(names)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Class", "Name", "Index", "Group"})
		for _, name := range names {
			info := classes[name]
			group := ""
			if info.ClassGroupID != nil {
				group = info.GroupShortName
			}
			t.AppendRow(table.Row{info.ShortName, info.LongName, info.IndexValue, group})
		}
		t.Render()
		return nil
	},
}

var classesAddCmd = &cobra.Command{
	Use:   "add <short-name>",
	Short: "Add a class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := classing.NewManager(viper.GetString("classes-db"))
		if err != nil {
			return err
		}
		defer mgr.Close()

		info := model.ClassInfo{ShortName: args[0]}
		info.ClassID, _ = cmd.Flags().GetString("id")
		info.LongName, _ = cmd.Flags().GetString("name")
		info.IndexValue, _ = cmd.Flags().GetFloat64("index")
		if groupID, _ := cmd.Flags().GetInt64("group-id"); groupID != 0 {
			info.ClassGroupID = &groupID
			info.GroupShortName, _ = cmd.Flags().GetString("group-short")
			info.GroupLongName, _ = cmd.Flags().GetString("group-name")
		}
		return mgr.CreateClass(info)
	},
}

var classesRmCmd = &cobra.Command{
	Use:   "rm <short-name>",
	Short: "Remove a class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := classing.NewManager(viper.GetString("classes-db"))
		if err != nil {
			return err
		}
		defer mgr.Close()
		return mgr.DeleteClass(args[0])
	},
}

func init() {
	classesAddCmd.Flags().String("id", "", "Class id")
	classesAddCmd.Flags().String("name", "", "Long class name")
	classesAddCmd.Flags().Float64("index", 1, "PAX index value")
	classesAddCmd.Flags().Int64("group-id", 0, "Class group id (0 for none)")
	classesAddCmd.Flags().String("group-short", "", "Class group short name")
	classesAddCmd.Flags().String("group-name", "", "Class group long name")

	classesCmd.AddCommand(classesListCmd, classesAddCmd, classesRmCmd)
	rootCmd.AddCommand(classesCmd)
}
