package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/guadalupeabrile/authentic/auth"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a config file",
	Long: `Walk through the first-run setup: admin credentials, listen port,
and storage directories, and write the result to a YAML config file.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("out", "config.yaml", "path of the config file to write")
	rootCmd.AddCommand(initCmd)
}

// initFile mirrors the config package's layout for the keys the setup asks
// about; everything omitted keeps its default.
type initFile struct {
	Server struct {
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`
	Admin struct {
		Username     string `yaml:"username"`
		PasswordHash string `yaml:"password_hash"`
	} `yaml:"admin"`
	Auth struct {
		Secret string `yaml:"secret"`
	} `yaml:"auth"`
	Storage struct {
		DataDir    string `yaml:"data_dir"`
		UploadsDir string `yaml:"uploads_dir"`
	} `yaml:"storage"`
}

func runInit(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	if _, err := os.Stat(out); err == nil {
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite it", out),
			IsConfirm: true,
		}
		if _, promptErr := confirm.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	usernamePrompt := promptui.Prompt{
		Label:   "Admin username",
		Default: "admin",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("username is required")
			}
			return nil
		},
	}
	username, err := usernamePrompt.Run()
	if err != nil {
		return fmt.Errorf("read username: %w", err)
	}

	passwordPrompt := promptui.Prompt{
		Label: "Admin password",
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) < 8 {
				return errors.New("password must be at least 8 characters")
			}
			return nil
		},
	}
	password, err := passwordPrompt.Run()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	secretPrompt := promptui.Prompt{
		Label: "Token signing secret",
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) < 16 {
				return errors.New("secret must be at least 16 characters")
			}
			return nil
		},
	}
	secret, err := secretPrompt.Run()
	if err != nil {
		return fmt.Errorf("read secret: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:   "Listen port",
		Default: "4000",
		Validate: func(input string) error {
			port, convErr := strconv.Atoi(input)
			if convErr != nil || port < 1 || port > 65535 {
				return errors.New("port must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return fmt.Errorf("read port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	envSelect := promptui.Select{
		Label: "Environment",
		Items: []string{"dev", "prod"},
	}
	_, env, err := envSelect.Run()
	if err != nil {
		return fmt.Errorf("select environment: %w", err)
	}

	dataDirPrompt := promptui.Prompt{
		Label:   "Document storage directory",
		Default: "./storage",
	}
	dataDir, err := dataDirPrompt.Run()
	if err != nil {
		return fmt.Errorf("read data dir: %w", err)
	}

	uploadsDirPrompt := promptui.Prompt{
		Label:   "Uploads directory",
		Default: "./public/uploads",
	}
	uploadsDir, err := uploadsDirPrompt.Run()
	if err != nil {
		return fmt.Errorf("read uploads dir: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	var f initFile
	f.Server.Port = port
	f.Server.Env = env
	f.Admin.Username = username
	f.Admin.PasswordHash = hash
	f.Auth.Secret = secret
	f.Storage.DataDir = dataDir
	f.Storage.UploadsDir = uploadsDir

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(out, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}
