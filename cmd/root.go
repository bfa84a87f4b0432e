package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MagicAardvark/race-results-sub000/pkg/classing"
	"github.com/MagicAardvark/race-results-sub000/pkg/model"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "liveresults",
	Short: "Ranked autocross and rallycross results from live timing telemetry.",
	Long: `liveresults ingests raw per-run timing snapshots and derives ranked,
gap-calculated, trophy-annotated results: per-class standings, PAX
standings, raw standings, rallycross totals and special awards.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setLogLevel(viper.GetString("loglevel"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.liveresults.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().String("classes-db", "./liveresults-classes.db", "Path to the class configuration database")
	rootCmd.PersistentFlags().String("scoring-mode", string(model.ScoringSingleBest), "Event scoring mode")
	rootCmd.PersistentFlags().Float64("cone-penalty", 2, "Cone penalty in seconds")
	rootCmd.PersistentFlags().String("trophy-mode", string(model.TrophyTopN), "Trophy policy: topn or percentage")
	rootCmd.PersistentFlags().Float64("trophy-value", 3, "Trophy count (topn) or percentage")

	for _, flag := range []string{"loglevel", "classes-db", "scoring-mode", "cone-penalty", "trophy-mode", "trophy-value"} {
		viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".liveresults")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Println(err)
			os.Exit(1)
		}
	}
}

func setLogLevel(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.Fatalf("bad log level %q", level)
	}
	log.SetLevel(parsed)
}

func eventConfigFromFlags() model.EventConfig {
	return model.EventConfig{
		ScoringMode:        model.ScoringMode(viper.GetString("scoring-mode")),
		ConePenaltySeconds: viper.GetFloat64("cone-penalty"),
		Trophy: model.TrophyConfig{
			Mode:  model.TrophyMode(viper.GetString("trophy-mode")),
			Value: viper.GetFloat64("trophy-value"),
		},
	}
}

func loadClassConfig() (model.ClassConfig, error) {
	mgr, err := classing.NewManager(viper.GetString("classes-db"))
	if err != nil {
		return nil, err
	}
	defer mgr.Close()
	return mgr.ListClasses()
}
