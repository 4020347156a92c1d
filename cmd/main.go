package main

import (
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/AymanAbodala/tennis-analysis/pkg/api"
	"github.com/AymanAbodala/tennis-analysis/pkg/utils"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	viper.SetDefault("analysis.distance_threshold", utils.DefaultDistanceThreshold)
	viper.SetDefault("analysis.fps", utils.DefaultFPS)
	viper.SetDefault("analysis.frame_height", utils.DefaultFrameHeight)
	viper.SetDefault("analysis.primary_players", utils.DefaultPrimaryPlayers)

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error: Could not read config file, got '%v'", err)
	}

	//first - create project's data root dir
	if _, err := os.Stat(viper.GetString("directory.root")); err != nil {
		if os.IsNotExist(err) {
			if err := os.Mkdir(viper.GetString("directory.root"), 0766); err != nil {
				log.Printf("Error Creating '%s' directory, got '%v'", viper.GetString("directory.root"), err)
			}
		}
	}

	//create missing directories from config file
	for _, dir := range viper.GetStringMap("directory") {
		if _, err := os.Stat(dir.(string)); err != nil {
			if os.IsNotExist(err) {
				if err := os.Mkdir(dir.(string), 0766); err != nil {
					log.Printf("Error Creating '%s' directory, got '%v'", dir.(string), err)
				}
			}
		}
	}

	if viper.GetString("tracker.script") == "" || viper.GetString("classifier.script") == "" {
		log.Fatalf("Error: Missing critical configurations")
	}

	r := api.SetRouter()
	if err := r.Run(":" + viper.GetString("http.port")); err != nil {
		log.Fatalf("Error: Got '%v'", err)
	}
}
