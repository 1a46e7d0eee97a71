package main

import (
	"os"

	"github.com/ttpr0/go-transit/routing"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	config := DefaultConfig()
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Warn("config file not found, using defaults: " + err.Error())
		return config
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	return config
}

func DefaultConfig() Config {
	config := Config{}
	config.Server.Port = "5002"
	config.Source.Network = "./data/network.json"
	config.Source.Receipts = "./receipts_out"
	config.Engine = routing.DefaultOptions()
	return config
}

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Source struct {
		Network  string `yaml:"network"`
		Receipts string `yaml:"receipts"`
	} `yaml:"source"`
	Engine routing.Options `yaml:"engine"`
}
