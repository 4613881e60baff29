package constants

// DefaultSettingsPath is the default path to the mailtask.toml settings file.
const DefaultSettingsPath = "./mailtask.toml"

// DefaultEnvPath is the default path to the optional .env file.
const DefaultEnvPath = "./.env"
