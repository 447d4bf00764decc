package configmanager

import (
	"encoding/json"
	"io/ioutil"

	"bitbucket.org/yellowmessenger/chime-sma-responder/metrics"
	"bitbucket.org/yellowmessenger/chime-sma-responder/queuemanager"
	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"
)

type appconfig struct {
	LoggerConf         ymlogger.LoggerConf             `json:"logger_conf"`
	MetricsConf        metrics.Config                  `json:"metrics_conf"`
	QueueConnParams    queuemanager.QueueConnParams    `json:"queue_conn_params"`
	QueueMessageParams queuemanager.QueueMessageParams `json:"queue_message_params"`
	EnableEventAudit   bool                            `json:"enable_event_audit"`

	MySQLHost          string `json:"mysql_host"`
	MySQLUser          string `json:"mysql_user"`
	MySQLPassword      string `json:"mysql_password"`
	MySQLDB            string `json:"mysql_db"`
	EnableDialOutAudit bool   `json:"enable_dialout_audit"`

	AWSRegion string `json:"aws_region"`

	WavFileBucket     string `json:"wavfile_bucket"`
	PlaybackAudioKey  string `json:"playback_audio_key"`
	RingbackToneKey   string `json:"ringback_tone_key"`
	VerifyAudioAssets bool   `json:"verify_audio_assets"`

	LexArnParamName      string `json:"lex_arn_param_name"`
	WelcomeMsgParamName  string `json:"welcome_msg_param_name"`
	VoiceFocusParamName  string `json:"voice_focus_param_name"`
	BotAliasArn          string `json:"bot_alias_arn"`
	BotLocaleID          string `json:"bot_locale_id"`
	ParamLookupTimeoutMS int    `json:"param_lookup_timeout_ms"`
	ParamCacheTTLSeconds int    `json:"param_cache_ttl_seconds"`

	DialOutMaxTries int `json:"dialout_max_tries"`
	DialOutWorkers  int `json:"dialout_workers"`

	FlowAPIRequestsPerSecond int `json:"flow_api_requests_per_second"`
	FlowAPIBurst             int `json:"flow_api_burst"`
}

// ConfStore stores the configuration variables
var ConfStore *appconfig

// InitConfig initializes the config
func InitConfig(
	fileName string,
) error {
	data, err := ioutil.ReadFile(fileName)
	if err != nil {
		return err
	}
	if err = json.Unmarshal([]byte(data), &ConfStore); err != nil {
		return err
	}
	ConfStore.setDefaults()
	return nil
}

func (conf *appconfig) setDefaults() {
	if conf.BotLocaleID == "" {
		conf.BotLocaleID = "en_US"
	}
	if conf.ParamLookupTimeoutMS <= 0 {
		conf.ParamLookupTimeoutMS = 2000
	}
	if conf.ParamCacheTTLSeconds <= 0 {
		conf.ParamCacheTTLSeconds = 300
	}
	if conf.DialOutMaxTries <= 0 {
		conf.DialOutMaxTries = 3
	}
	if conf.DialOutWorkers <= 0 {
		conf.DialOutWorkers = 4
	}
	if conf.PlaybackAudioKey == "" {
		conf.PlaybackAudioKey = "hello-goodbye.wav"
	}
	if conf.RingbackToneKey == "" {
		conf.RingbackToneKey = "ringback.wav"
	}
	if conf.FlowAPIRequestsPerSecond <= 0 {
		conf.FlowAPIRequestsPerSecond = 50
	}
	if conf.FlowAPIBurst <= 0 {
		conf.FlowAPIBurst = 100
	}
}
