package metrics

import (
	"encoding/json"
	"errors"
	"net"
	"os"
	"strconv"
	"sync"
	"time"
)

var client Client

// Client holds the info about the metrics sink
type Client struct {
	Service string
	Host    string
	Port    string
}

// Config contains the configuration for the metrics
type Config struct {
	Host    string `json:"host"`
	Port    int    `json:"port"`
	Service string `json:"service"`
}

type metricDump struct {
	Name      string                 `json:"name"`
	Filters   map[string]string      `json:"filters"`
	Fields    map[string]interface{} `json:"fields"`
	TimeStamp int64                  `json:"timestamp"`
}

// Metric contains the metric to be sent
type Metric struct {
	metricDump
	sync.Mutex
}

// SetName sets the metric name
func (m *Metric) SetName(name string) {
	m.Name = name
}

// AddFilter adds the filter to the metric
func (m *Metric) AddFilter(key, value string) error {
	if len(key) <= 0 || len(value) <= 0 {
		return errors.New("Key/value can't be empty")
	}
	m.Lock()
	m.Filters[key] = value
	m.Unlock()
	return nil
}

// AddFilters adds all the filters to the metric
func (m *Metric) AddFilters(filters map[string]string) error {
	for key, value := range filters {
		if err := m.AddFilter(key, value); err != nil {
			return err
		}
	}
	return nil
}

// AddField adds the field to the metric
func (m *Metric) AddField(key string, value interface{}) error {
	if len(key) <= 0 {
		return errors.New("Field name can't be empty")
	}
	m.Lock()
	m.Fields[key] = value
	m.Unlock()
	return nil
}

// AddFields adds all the fields to the metric
func (m *Metric) AddFields(fields map[string]interface{}) error {
	for key, value := range fields {
		if err := m.AddField(key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetTimeStamp sets the timestamp for the metric
func (m *Metric) SetTimeStamp(t time.Time) {
	m.TimeStamp = t.Unix()
}

// Serialize marshals the metric
func (m *Metric) Serialize() ([]byte, error) {
	data, err := json.Marshal(m.metricDump)
	if err != nil {
		return []byte{}, err
	}
	return data, nil
}

// InitClient initializes the client
func InitClient(config Config) error {
	client = Client{}
	if len(config.Host) <= 0 {
		return errors.New("Failed initializing the metric client. Hostname is empty")
	}
	if config.Port <= 0 {
		return errors.New("Failed initializing the metric client. Port is empty")
	}
	if len(config.Service) <= 0 {
		return errors.New("Failed initializing the metric client. Service is empty")
	}
	client.Host = config.Host
	client.Port = strconv.Itoa(config.Port)
	client.Service = config.Service
	return nil
}

// NewMetric is used to create a new metric object
func NewMetric(name string, filters map[string]string, fields map[string]interface{}) (*Metric, error) {
	metric := new(Metric)
	metric.Filters = make(map[string]string)
	metric.Fields = make(map[string]interface{})
	metric.SetName(name)
	if err := metric.AddFilters(filters); err != nil {
		return metric, err
	}
	if err := metric.AddFields(fields); err != nil {
		return metric, err
	}
	metric.SetTimeStamp(time.Now())
	return metric, nil
}

// SendMetric sends the metric over UDP, best effort
func SendMetric(metric *Metric) error {
	hostName, err := os.Hostname()
	if err != nil {
		return errors.New("Failed sending the metric. Hostname not found")
	}
	metric.AddFilter("host", hostName)
	metric.AddFilter("service", client.Service)
	msg, err := metric.Serialize()
	if err != nil {
		return errors.New("Failed sending the metric. Couldn't serialize the metric")
	}
	conn, err := net.Dial("udp", client.Host+":"+client.Port)
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Write(msg)
	if err != nil {
		return err
	}
	return nil
}

// SendFlowMetric records one handled event for a flow with the action
// types that were returned
func SendFlowMetric(flow string, eventType string, actionCount int) {
	metric, err := NewMetric(
		"sma_events",
		map[string]string{
			"flow":       flow,
			"event_type": eventType,
		},
		map[string]interface{}{
			"actions": actionCount,
			"value":   1,
		},
	)
	if err != nil {
		return
	}
	SendMetric(metric)
}
