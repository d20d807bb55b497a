// Package config provides configuration management for stock-audit.
//
// It loads an optional .env file with godotenv, then reads environment
// variables through Viper. Defaults come from the `default` struct tags of
// each section and are registered by walking the structs with reflection.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key and body limit
//   - Storage: S3/MinIO credentials and the bucket for manifests and reports
//   - Log: Logging level and format
//   - Database: optional report archive (mysql or sqlite)
//   - Scan: arm timeout, external decoder command and camera device
//   - Manifest: column name candidates and bucket prefix
//   - Export: report bucket prefix and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Scan.ArmTimeout)
package config
