package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/questlog/questlog/internal/api"
	"github.com/questlog/questlog/internal/config"
	"github.com/questlog/questlog/pkg/questlog"
)

// Exit codes for granular error handling
const (
	ExitSuccess      = 0
	ExitNetworkError = 1
	ExitProcessError = 2
	ExitInvalidInput = 3
	ExitConfigError  = 4
	ExitFileIOError  = 5
	ExitPartialError = 6 // some URLs failed, some succeeded
)

var (
	cfgFile          string
	outputFile       string
	outputFormat     string
	browserName      string
	browserAgent     string
	javascript       bool
	noJS             bool
	timeout          int
	separator        string
	userAgent        string
	waitFor          string
	includeStatement bool
	syncResults      bool
	pseudoIDs        bool
	verbose          bool
	quiet            bool
	file             string
	continueOnError  bool
	delay            float64
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "questlog [urls...]",
	Short: "Scrape coding problem metadata from problem pages",
	Long: `questlog scrapes problem metadata (title, number, difficulty, topics,
company tags, solved status) from LeetCode, GeeksForGeeks and InterviewBit
problem pages, and can sync results to a tracking backend.`,
	Version:       version,
	RunE:          run,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var loginCmd = &cobra.Command{
	Use:   "login [token]",
	Short: "Store an API token for syncing results",
	Long: `login stores a backend API token. Pass the token as an argument or
pipe it on stdin. The token is written to the config directory with
owner-only permissions.`,
	RunE:          runLogin,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var logoutCmd = &cobra.Command{
	Use:           "logout",
	Short:         "Remove the stored API token",
	RunE:          runLogout,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*exitErr); ok {
			os.Exit(exitErr.code)
		}
		os.Exit(ExitInvalidInput)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/questlog/config.toml)")

	// Input/Output flags
	rootCmd.Flags().StringVarP(&file, "file", "f", "", "read URLs from file (one per line)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to file (default: stdout)")
	rootCmd.Flags().StringVar(&outputFormat, "format", "json", "output format (json|text)")
	rootCmd.Flags().StringVar(&separator, "separator", "---", "output separator for multiple URLs in text format")

	// Browser integration flags
	rootCmd.Flags().StringVarP(&browserName, "browser", "b", "auto", "browser for cookie extraction (chrome|firefox|safari)")

	// Rendering flags
	rootCmd.Flags().BoolVar(&javascript, "javascript", false, "force JavaScript rendering")
	rootCmd.Flags().BoolVar(&noJS, "no-js", false, "disable JavaScript rendering")
	rootCmd.Flags().IntVar(&timeout, "timeout", 30, "request timeout in seconds")
	rootCmd.Flags().StringVar(&waitFor, "wait-for", "", "CSS selector to wait for during JavaScript rendering")

	// Content flags
	rootCmd.Flags().BoolVar(&includeStatement, "include-statement", false, "include the problem statement text in output")
	rootCmd.Flags().StringVar(&userAgent, "user-agent", "", "custom user agent string")
	rootCmd.Flags().StringVar(&browserAgent, "browser-agent", "", "browser agent type (auto|chrome|firefox|safari)")

	// Sync flags
	rootCmd.Flags().BoolVar(&syncResults, "sync", false, "save extracted problems to the backend")
	rootCmd.Flags().BoolVar(&pseudoIDs, "pseudo-ids", false, "generate deterministic numbers for platforms without one")

	// Pipeline flags
	rootCmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "continue processing remaining URLs on error")
	rootCmd.Flags().Float64Var(&delay, "delay", 0, "delay in seconds between requests (rate limiting)")

	// System flags
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress all non-content output")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				if !quiet {
					fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
				}
				return
			}
			configHome = filepath.Join(home, ".config")
		}

		configDir := filepath.Join(configHome, "questlog")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")

		if mkdirErr := os.MkdirAll(configDir, 0755); mkdirErr != nil && !os.IsExist(mkdirErr) {
			if !quiet {
				fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", mkdirErr)
			}
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("QUESTLOG")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Auto-create config on first run
			configPath := getDefaultConfigPath()
			if configPath != "" {
				cfg := config.Default()
				if createErr := cfg.CreateExampleConfig(configPath); createErr == nil {
					if !quiet {
						fmt.Fprintf(os.Stderr, "Created config file: %s\n", configPath)
					}
					viper.ReadInConfig()
				}
			}
		} else if verbose && !quiet {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	} else if verbose && !quiet {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func getDefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "questlog", "config.toml")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return exitError(ExitConfigError, "failed to load config: %v", err)
	}

	// Apply config defaults if CLI flags not explicitly set
	if !cmd.Flags().Changed("delay") && cfg.Network.Delay > 0 {
		delay = float64(cfg.Network.Delay)
	}
	if !cmd.Flags().Changed("format") && cfg.Output.DefaultFormat != "" {
		outputFormat = cfg.Output.DefaultFormat
	}
	if !cmd.Flags().Changed("separator") && cfg.Output.Separator != "" {
		separator = cfg.Output.Separator
	}
	if !cmd.Flags().Changed("include-statement") {
		includeStatement = cfg.Output.IncludeStatement
	}
	if !cmd.Flags().Changed("timeout") && cfg.Network.Timeout > 0 {
		timeout = cfg.Network.Timeout
	}
	if !cmd.Flags().Changed("user-agent") {
		userAgent = cfg.Network.UserAgent
	}
	if !cmd.Flags().Changed("browser-agent") {
		browserAgent = cfg.Network.BrowserAgent
	}
	if !cmd.Flags().Changed("browser") && cfg.Browser.Default != "" {
		browserName = cfg.Browser.Default
	}
	if !cmd.Flags().Changed("wait-for") {
		waitFor = cfg.Rendering.WaitForSelector
	}
	if !cmd.Flags().Changed("pseudo-ids") {
		pseudoIDs = cfg.Sync.PseudoIDs
	}
	if !cmd.Flags().Changed("javascript") && !cmd.Flags().Changed("no-js") {
		switch cfg.Rendering.EnableJavaScript {
		case "always":
			javascript = true
		case "never":
			noJS = true
		}
	}

	if outputFormat != "json" && outputFormat != "text" {
		return exitError(ExitInvalidInput, "unknown output format: %s (available: json, text)", outputFormat)
	}

	cfg.Network.UserAgent = userAgent
	cfg.Browser.Default = browserName
	cfg.Rendering.WaitForSelector = waitFor

	urls, err := collectURLs(args)
	if err != nil {
		return exitError(ExitInvalidInput, "failed to collect URLs: %v", err)
	}
	if len(urls) == 0 {
		return exitError(ExitInvalidInput, "no URLs provided")
	}

	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, "Processing %d URLs\n", len(urls))
	}

	var output io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return exitError(ExitFileIOError, "failed to create output file %s: %v", outputFile, err)
		}
		defer f.Close()
		output = f
	}

	scraper := questlog.New(cfg)

	var client *api.Client
	if syncResults {
		tokens, err := api.NewTokenStore("")
		if err != nil {
			return exitError(ExitConfigError, "failed to locate token store: %v", err)
		}
		client = api.NewClient(cfg.Sync.BaseURL, time.Duration(timeout)*time.Second, tokens)
		client.PseudoIDs = pseudoIDs
		if !client.IsAuthenticated() {
			return exitError(ExitConfigError, "sync requested but no token stored; run 'questlog login' first")
		}
	}

	hadError := false
	successCount := 0

	for i, url := range urls {
		if verbose && !quiet {
			fmt.Fprintf(os.Stderr, "Processing [%d/%d]: %s\n", i+1, len(urls), url)
		}

		rendered, err := processURL(scraper, client, url)
		if err != nil {
			hadError = true
			if !quiet {
				fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", url, err)
			}
			if !continueOnError {
				errStr := err.Error()
				if strings.Contains(errStr, "failed to fetch") || strings.Contains(errStr, "HTTP error") || strings.Contains(errStr, "dial") {
					return exitError(ExitNetworkError, "")
				}
				return exitError(ExitProcessError, "")
			}
			continue
		}

		successCount++

		fmt.Fprint(output, rendered)
		if outputFormat == "text" && len(urls) > 1 && i < len(urls)-1 {
			fmt.Fprintf(output, "\n%s\n", separator)
		}

		// Rate limiting delay between requests
		if delay > 0 && i < len(urls)-1 {
			time.Sleep(time.Duration(delay*1000) * time.Millisecond)
		}
	}

	if hadError && successCount > 0 {
		return &exitErr{code: ExitPartialError, msg: ""}
	} else if hadError && successCount == 0 {
		return &exitErr{code: ExitNetworkError, msg: ""}
	}

	return nil
}

func processURL(scraper *questlog.Scraper, client *api.Client, url string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	var useJS *bool
	if javascript {
		v := true
		useJS = &v
	} else if noJS {
		v := false
		useJS = &v
	}

	result, err := scraper.Scrape(ctx, url, questlog.ScrapeOptions{
		UseJS:            useJS,
		Timeout:          time.Duration(timeout) * time.Second,
		BrowserAgent:     browserAgent,
		IncludeStatement: includeStatement,
	})
	if err != nil {
		return "", err
	}

	if verbose && !quiet && result.UsedJavaScript {
		fmt.Fprintf(os.Stderr, "Rendered with JavaScript: %s\n", url)
	}

	if client != nil {
		if err := client.SaveProblem(ctx, result.Report.Result); err != nil {
			if err == api.ErrTokenRevoked {
				return "", fmt.Errorf("sync failed: token rejected by backend, run 'questlog login' again")
			}
			return "", fmt.Errorf("sync failed: %w", err)
		}
		if verbose && !quiet {
			fmt.Fprintf(os.Stderr, "Synced: %s\n", result.Report.Name)
		}
	}

	renderer := scraper.Renderer()
	if outputFormat == "text" {
		return renderer.ToText(result.Report), nil
	}
	return renderer.ToJSON(result.Report)
}

func runLogin(cmd *cobra.Command, args []string) error {
	var token string
	if len(args) > 0 {
		token = strings.TrimSpace(args[0])
	} else {
		stat, err := os.Stdin.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				token = strings.TrimSpace(scanner.Text())
			}
		}
	}

	if token == "" {
		return exitError(ExitInvalidInput, "no token provided; pass it as an argument or pipe it on stdin")
	}

	store, err := api.NewTokenStore("")
	if err != nil {
		return exitError(ExitConfigError, "failed to locate token store: %v", err)
	}
	if err := store.Save(token); err != nil {
		return exitError(ExitFileIOError, "failed to store token: %v", err)
	}
	if !quiet {
		fmt.Fprintln(os.Stderr, "Token stored")
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	store, err := api.NewTokenStore("")
	if err != nil {
		return exitError(ExitConfigError, "failed to locate token store: %v", err)
	}
	if err := store.Clear(); err != nil {
		return exitError(ExitFileIOError, "failed to remove token: %v", err)
	}
	if !quiet {
		fmt.Fprintln(os.Stderr, "Token removed")
	}
	return nil
}

func collectURLs(args []string) ([]string, error) {
	var urls []string

	urls = append(urls, args...)

	if file != "" {
		fileURLs, err := readURLsFromFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read URLs from file %s: %w", file, err)
		}
		urls = append(urls, fileURLs...)
	}

	// Read URLs from stdin if no args and no file specified
	if len(args) == 0 && file == "" {
		stdinURLs, err := readURLsFromStdin()
		if err != nil {
			return nil, fmt.Errorf("failed to read URLs from stdin: %w", err)
		}
		urls = append(urls, stdinURLs...)
	}

	var cleanURLs []string
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url != "" && isValidURL(url) {
			cleanURLs = append(cleanURLs, url)
		}
	}

	return cleanURLs, nil
}

func readURLsFromFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			urls = append(urls, line)
		}
	}

	return urls, scanner.Err()
}

func readURLsFromStdin() ([]string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}

	if (stat.Mode() & os.ModeCharDevice) == 0 {
		var urls []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				urls = append(urls, line)
			}
		}
		return urls, scanner.Err()
	}

	return nil, nil
}

func isValidURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string {
	return e.msg
}

func exitError(code int, format string, args ...interface{}) *exitErr {
	msg := fmt.Sprintf(format, args...)
	if msg != "" && !quiet {
		fmt.Fprintf(os.Stderr, "%s\n", msg)
	}
	return &exitErr{code: code, msg: msg}
}
