package main

import (
	"context"
	"log"
	_ "net/http/pprof"
	"time"

	"bitbucket.org/yellowmessenger/chime-sma-responder/audiostore"
	"bitbucket.org/yellowmessenger/chime-sma-responder/configmanager"
	"bitbucket.org/yellowmessenger/chime-sma-responder/core/botflow"
	"bitbucket.org/yellowmessenger/chime-sma-responder/core/callbackflow"
	"bitbucket.org/yellowmessenger/chime-sma-responder/core/forwardflow"
	"bitbucket.org/yellowmessenger/chime-sma-responder/core/playbackflow"
	"bitbucket.org/yellowmessenger/chime-sma-responder/dialout"
	"bitbucket.org/yellowmessenger/chime-sma-responder/metrics"
	"bitbucket.org/yellowmessenger/chime-sma-responder/models/mysql"
	"bitbucket.org/yellowmessenger/chime-sma-responder/newrelic"
	"bitbucket.org/yellowmessenger/chime-sma-responder/paramstore"
	"bitbucket.org/yellowmessenger/chime-sma-responder/queuemanager"
	"bitbucket.org/yellowmessenger/chime-sma-responder/requesthandler"
	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v3"
	echopprof "github.com/sevenNt/echo-pprof"
)

var (
	host = "0.0.0.0"
	port = "9991"
)

func main() {
	// Initialize new relic app
	if err := newrelic.InitNewRelicApp(); err != nil {
		log.Fatalf("Error while initializing new relic app. Error: [%#v]", err)
	}
	e := echo.New()
	// Set the middlewares
	e.Use(nrecho.Middleware(newrelic.App))
	e.Use(middleware.Secure())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1024KB"))
	e.Use(middleware.RemoveTrailingSlash())
	loggerConfig := middleware.DefaultLoggerConfig
	e.Use(middleware.LoggerWithConfig(loggerConfig))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the config
	if err := configmanager.InitConfig("config.json"); err != nil {
		log.Fatalf("Error while initializing the config. Error: [%#v]", err)
	}
	conf := configmanager.ConfStore
	requesthandler.SetFlowRateLimit(conf.FlowAPIRequestsPerSecond, conf.FlowAPIBurst)

	// Initialize YM logger
	if err := ymlogger.InitYMLogger(conf.LoggerConf); err != nil {
		log.Fatalf("Failed to initialize the logger. Err: [%#v]", err)
	}

	// Initialize Metrics client
	if err := metrics.InitClient(conf.MetricsConf); err != nil {
		ymlogger.LogErrorf("Init", "Failed to initialize metrics client. Error: [%#v]", err)
	}

	// Event audit queue and dial-out audit DB are optional
	if conf.EnableEventAudit {
		if err := queuemanager.InitRabbitMQConn(conf.QueueConnParams); err != nil {
			ymlogger.LogErrorf("Init", "Event audit disabled, RabbitMQ init failed. Error: [%#v]", err)
		}
	}
	if conf.EnableDialOutAudit {
		if err := mysql.Init(); err != nil {
			ymlogger.LogErrorf("Init", "Dial-out audit disabled, MySQL init failed. Error: [%#v]", err)
		}
	}

	// Parameter source for the bot flow
	params, err := paramstore.NewStore(
		conf.AWSRegion,
		time.Duration(conf.ParamLookupTimeoutMS)*time.Millisecond,
		time.Duration(conf.ParamCacheTTLSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("Failed to initialize the parameter store. Error: [%#v]", err)
	}

	// Dialer for the call-back flow
	dialer, err := dialout.NewDialer(conf.AWSRegion, conf.DialOutWorkers, conf.DialOutMaxTries, conf.EnableDialOutAudit)
	if err != nil {
		log.Fatalf("Failed to initialize the dialer. Error: [%#v]", err)
	}

	// Verify the audio assets the flows reference
	if conf.VerifyAudioAssets {
		checker, err := audiostore.NewChecker(conf.AWSRegion)
		if err != nil {
			ymlogger.LogErrorf("Init", "Failed to initialize the audio store checker. Error: [%#v]", err)
		} else {
			keys := []string{conf.PlaybackAudioKey, conf.RingbackToneKey}
			if missing := checker.VerifyAssets(ctx, conf.WavFileBucket, keys); len(missing) > 0 {
				ymlogger.LogCriticalf("Init", "Audio assets missing from [%s]: %v", conf.WavFileBucket, missing)
			}
		}
	}

	handlers := FlowHandlers{
		ForwardCall: requesthandler.ForwardCallHandler{
			Evaluator: forwardflow.NewEvaluator(forwardflow.Config{
				WavFileBucket:   conf.WavFileBucket,
				RingbackToneKey: conf.RingbackToneKey,
			}),
		},
		LexBot: requesthandler.LexBotHandler{
			Evaluator: botflow.NewEvaluator(botflow.Config{
				LexArnParamName:     conf.LexArnParamName,
				WelcomeMsgParamName: conf.WelcomeMsgParamName,
				VoiceFocusParamName: conf.VoiceFocusParamName,
				BotAliasArn:         conf.BotAliasArn,
				LocaleID:            conf.BotLocaleID,
			}, params),
		},
		CallMeBack: requesthandler.CallMeBackHandler{
			Evaluator: callbackflow.NewEvaluator(dialer),
		},
		PlayRecording: requesthandler.PlayRecordingHandler{
			Evaluator: playbackflow.NewEvaluator(playbackflow.Config{
				WavFileBucket: conf.WavFileBucket,
				AudioKey:      conf.PlaybackAudioKey,
			}),
		},
	}

	AddRoutes(e, handlers)
	echopprof.Wrap(e)

	e.Logger.Fatal(e.Start(host + ":" + port))
}
