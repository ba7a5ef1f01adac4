package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/NicolasCard/RAPZ/internal/api"
	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/NicolasCard/RAPZ/internal/simulator"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rapz",
	Short: "Local delivery matching between stores and motoboys",
	Long:  `rapz serves the RAPZ session API: stores publish delivery requests priced by a generative fair-price estimator, riders accept and complete them, one active delivery at a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		server, err := api.NewServer(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting server: %v\n", err)
			os.Exit(1)
		}
		if err := server.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted delivery session against the in-memory store",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim, err := simulator.NewSimulator(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting simulator: %v\n", err)
			os.Exit(1)
		}
		if err := sim.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().String("listen-addr", ":8000", "HTTP listen address")
	rootCmd.Flags().String("gemini-model", "gemini-3-flash-preview", "Pricing model name")
	rootCmd.Flags().Bool("seed-orders", true, "Install the demo pending orders at startup")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka event output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-file", "", "Event output folder (if not using Kafka)")

	simulateCmd.Flags().Int("sim-orders", 20, "Number of deliveries to simulate")
	simulateCmd.Flags().Int64("sim-seed", 42, "Random seed for the simulated session")

	viper.BindPFlag("listen_addr", rootCmd.Flags().Lookup("listen-addr"))
	viper.BindPFlag("gemini_model", rootCmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("seed_orders", rootCmd.Flags().Lookup("seed-orders"))
	viper.BindPFlag("kafka_enabled", rootCmd.Flags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.Flags().Lookup("kafka-broker-list"))
	viper.BindPFlag("output_file_path", rootCmd.Flags().Lookup("output-file"))
	viper.BindPFlag("sim_orders", simulateCmd.Flags().Lookup("sim-orders"))
	viper.BindPFlag("sim_seed", simulateCmd.Flags().Lookup("sim-seed"))

	rootCmd.AddCommand(simulateCmd)
}

func initConfig() {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
