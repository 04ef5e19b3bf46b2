// Package config loads typed configuration structs from environment
// variables, with optional .env bootstrap for local development.
//
// Config structs live next to the components they configure and declare
// their variables through `env:` tags (see caarlos0/env for the tag
// vocabulary). The loader is a thin composition of godotenv and env.Parse:
// the first Load call reads a .env file if present, after which every call
// parses the process environment into the given struct.
//
// # Usage
//
//	var cfg sessiontoken.Config
//	config.MustLoad(&cfg)
//	tokens := sessiontoken.NewFromConfig(cfg)
package config
