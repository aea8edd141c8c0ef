package main

import "flag"

type AppFlags struct {
	ConfigFile string
	StateFile  string
	Topic      string
}

// ParseFlags reads command-line flags, consolidating short aliases.
func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	stateFile := flag.String("state", "", "Path to the JSON state file (overrides config).")
	stateFileAlias := flag.String("s", "", "Alias for -state")

	topic := flag.String("topic", "", "ntfy topic for notifications (overrides config).")

	flag.Parse()

	flags := AppFlags{Topic: *topic}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if *stateFile != "" {
		flags.StateFile = *stateFile
	} else if *stateFileAlias != "" {
		flags.StateFile = *stateFileAlias
	}

	return flags
}
