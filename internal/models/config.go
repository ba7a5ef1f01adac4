package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`

	// Session actors. The prototype runs a single store and a single rider.
	StoreID     string  `mapstructure:"store_id"`
	StoreName   string  `mapstructure:"store_name"`
	StoreRating float64 `mapstructure:"store_rating"`
	RiderID     string  `mapstructure:"rider_id"`
	RiderName   string  `mapstructure:"rider_name"`
	RiderRating float64 `mapstructure:"rider_rating"`

	// Store pickup point and the dropoff coordinate attached to orders
	// created from a typed address (no geocoding in the prototype).
	PickupAddress     string  `mapstructure:"pickup_address"`
	PickupLat         float64 `mapstructure:"pickup_latitude"`
	PickupLng         float64 `mapstructure:"pickup_longitude"`
	DefaultDropoffLat float64 `mapstructure:"default_dropoff_latitude"`
	DefaultDropoffLng float64 `mapstructure:"default_dropoff_longitude"`

	// Pricing service.
	GeminiAPIKey   string        `mapstructure:"gemini_api_key"`
	GeminiModel    string        `mapstructure:"gemini_model"`
	GeminiBaseURL  string        `mapstructure:"gemini_base_url"`
	DefaultWeather string        `mapstructure:"default_weather"`
	PricingTimeout time.Duration `mapstructure:"pricing_timeout"`

	// Event sink selection, mirrored from the simulator tooling: Kafka when
	// enabled, a JSON-lines file when a path is set, console otherwise.
	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	OutputFile      string `mapstructure:"output_file_path"`

	// Demo/simulation knobs.
	SeedOrders  bool    `mapstructure:"seed_orders"`
	SimOrders   int     `mapstructure:"sim_orders"`
	SimSeed     int64   `mapstructure:"sim_seed"`
	CityLat     float64 `mapstructure:"city_latitude"`
	CityLng     float64 `mapstructure:"city_longitude"`
	UrbanRadius float64 `mapstructure:"urban_radius"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match
	viper.BindEnv("gemini_api_key", "GEMINI_API_KEY")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine, flags and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("listen_addr", ":8000")
	viper.SetDefault("store_id", "s1")
	viper.SetDefault("store_name", "Pizzaria do Bairro")
	viper.SetDefault("store_rating", 4.9)
	viper.SetDefault("rider_id", "r1")
	viper.SetDefault("rider_name", "João")
	viper.SetDefault("rider_rating", 4.9)
	viper.SetDefault("pickup_address", "Minha Loja, 500")
	viper.SetDefault("pickup_latitude", -23.5505)
	viper.SetDefault("pickup_longitude", -46.6333)
	viper.SetDefault("default_dropoff_latitude", -23.5596)
	viper.SetDefault("default_dropoff_longitude", -46.6588)
	viper.SetDefault("gemini_model", "gemini-3-flash-preview")
	viper.SetDefault("gemini_base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("default_weather", "bom")
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("seed_orders", true)
	viper.SetDefault("sim_orders", 20)
	viper.SetDefault("sim_seed", 42)
	viper.SetDefault("city_latitude", -23.5505)
	viper.SetDefault("city_longitude", -46.6333)
	viper.SetDefault("urban_radius", 10.0)
}

// RiderProfile builds the fixed rider-side session profile.
func (cfg *Config) RiderProfile() UserProfile {
	return UserProfile{ID: cfg.RiderID, Name: cfg.RiderName, Role: RoleRider, Rating: cfg.RiderRating}
}

// StoreProfile builds the fixed store-side session profile.
func (cfg *Config) StoreProfile() UserProfile {
	return UserProfile{ID: cfg.StoreID, Name: cfg.StoreName, Role: RoleStore, Rating: cfg.StoreRating}
}
