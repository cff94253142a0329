// Package config loads layered configuration with koanf.
//
// Sources, lowest precedence first:
//   - [Defaults]
//   - a YAML file ([WithFile])
//   - environment variables with the [DefaultEnvPrefix] prefix
//   - explicit overrides ([WithOverrides])
//
// Example:
//
//	cfg, err := config.Load(config.WithFile("foundation.yaml"))
//	if err != nil {
//		return err
//	}
//
// With FOUNDATION_LOG__LEVEL=debug in the environment, cfg.Log.Level is "debug".
// Comma-separated env values are not split; list settings such as
// request.client_ip_headers belong in the YAML file.
package config
