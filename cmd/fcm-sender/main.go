// cmd/fcm-sender/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"fcm-sender/internal/common/config"
	commonhttp "fcm-sender/internal/common/http"
	"fcm-sender/internal/common/logger"
	"fcm-sender/internal/fcm"
)

const (
	selectorCommon   = "common-message"
	selectorOverride = "override-message"
)

func main() {
	messageArg := flag.String("message", "", "common-message, override-message, or a JSON parameter object")
	configPath := flag.String("config", "", "path to a config file (optional)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	env, err := resolveMessage(*messageArg)
	if err != nil {
		zapLog.Fatal("invalid message parameters", zap.Error(err))
	}
	if env == nil {
		printUsage(os.Stdout)
		return
	}

	creds, err := fcm.LoadCredentials(cfg.FCM.ServiceAccount)
	if err != nil {
		zapLog.Fatal("failed to load service account key", zap.Error(err))
	}

	tokens := fcm.NewGoogleTokenProvider(creds, cfg.FCM.Scopes)
	httpClient := commonhttp.NewClient(config.GetDuration(cfg.FCM.Timeout))
	sender := fcm.NewSender(
		creds.SendEndpoint(cfg.FCM.BaseURL),
		tokens,
		httpClient,
		logger.NewZapAdapter(zapLog),
		os.Stdout,
	)

	pretty, err := env.PrettyJSON()
	if err != nil {
		zapLog.Fatal("failed to render request body", zap.Error(err))
	}
	fmt.Println("FCM request body:")
	fmt.Println(pretty)

	// A non-200 send is printed by the sender and does not change the
	// exit code; only transport or token failures are fatal.
	if _, err := sender.Send(context.Background(), env); err != nil {
		zapLog.Fatal("send failed", zap.Error(err))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// resolveMessage maps the --message argument to an envelope. A nil envelope
// with a nil error means the argument selected nothing and the caller should
// print usage without touching the network.
func resolveMessage(arg string) (*fcm.Envelope, error) {
	switch {
	case arg == selectorCommon:
		return fcm.Build(fcm.KindCommon, nil)
	case arg == selectorOverride:
		return fcm.Build(fcm.KindOverride, nil)
	case strings.HasPrefix(strings.TrimSpace(arg), "{"):
		params, err := fcm.ParseCustomParams(arg)
		if err != nil {
			return nil, err
		}
		return fcm.Build(fcm.KindCustom, params)
	default:
		return nil, nil
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Invalid message type. Use one of the following:")
	fmt.Fprintln(w, "  fcm-sender --message=common-message")
	fmt.Fprintln(w, "  fcm-sender --message=override-message")
	fmt.Fprintln(w, `  fcm-sender --message='{"title":"...","body":"...","topic":"..."}'`)
}
