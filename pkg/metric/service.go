package metric

import "github.com/prometheus/client_golang/prometheus"

type Service struct {
	success *prometheus.CounterVec
	fails   *prometheus.CounterVec
	io      *prometheus.HistogramVec
}

func New() *Service {

	m := &Service{
		success: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "onesignal",
			Name:      "processed_notifications",
			Help:      "Notifications accepted by the service"},
			[]string{"appId"}),
		fails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "onesignal",
			Name:      "failed_notifications",
			Help:      "Notifications refused by the service or not delivered"},
			[]string{"appId"}),
		io: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "onesignal",
			Name:      "io",
			Help:      "Time spent in I/O with the service (in nanoseconds)"},
			[]string{"appId"}),
	}

	for _, c := range []prometheus.Collector{
		m.success,
		m.fails,
		m.io,
	} {
		if err := prometheus.Register(c); err != nil {
			switch err.(type) {
			case prometheus.AlreadyRegisteredError:
				break
			default:
				panic(err)
			}
		}
	}

	return m
}

func (m *Service) GetAppMetrics(appID string) (*App, error) {

	var err error

	a := &App{}
	a.fails, err = m.fails.GetMetricWith(prometheus.Labels{"appId": appID})
	if err != nil {
		return nil, err
	}

	a.success, err = m.success.GetMetricWith(prometheus.Labels{"appId": appID})
	if err != nil {
		return nil, err
	}

	a.io, err = m.io.GetMetricWith(prometheus.Labels{"appId": appID})
	if err != nil {
		return nil, err
	}

	return a, nil
}
