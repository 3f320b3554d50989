package worker

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/pushgate/onesignal-client/pkg/metric"
	"github.com/pushgate/onesignal-client/pkg/provider/onesignal"
	"go.uber.org/zap"
)

var ErrEmptyContents = errors.New("empty message contents")

// Worker wraps the client with logging, metrics, a nop mode for dry runs
// and a bound on concurrent sends.
type Worker struct {
	appID     string
	nopMode   bool
	slots     chan struct{}
	logger    *zap.Logger
	metric    *metric.App
	transport onesignal.Transport
}

func New(cfg *Config, logger *zap.Logger, svcMetric *metric.Service) (*Worker, error) {

	client, err := onesignal.NewClient(cfg.Config)
	if err != nil {
		return nil, err
	}

	return NewWithTransport(client, cfg, logger, svcMetric)
}

func NewWithTransport(
	transport onesignal.Transport,
	cfg *Config,
	logger *zap.Logger,
	svcMetric *metric.Service,
) (*Worker, error) {

	sendSlots := cfg.SendSlots
	if sendSlots <= 0 {
		sendSlots = runtime.NumCPU()
	}

	slots := make(chan struct{}, sendSlots)
	for i := 0; i < sendSlots; i++ {
		slots <- struct{}{}
	}

	appID := transport.AppID()

	appMetric, err := svcMetric.GetAppMetrics(appID)
	if err != nil {
		return nil, err
	}

	return &Worker{
		appID:     appID,
		nopMode:   cfg.NopMode,
		slots:     slots,
		logger:    logger.With(zap.String("app", appID)),
		metric:    appMetric,
		transport: transport,
	}, nil
}

func (w *Worker) AppID() string {
	return w.appID
}

func (w *Worker) NopMode() bool {
	return w.nopMode
}

// Send builds the notification and delivers it. A response the service
// refused is reported as a *onesignal.SendError alongside the response.
func (w *Worker) Send(ctx context.Context, params onesignal.Params) (*onesignal.Response, error) {

	reserved := <-w.slots
	defer func() { w.slots <- reserved }()

	body := params.Build(w.transport)

	if contents, ok := body["contents"].(map[string]string); ok && len(contents) == 0 {
		w.logger.Error(ErrEmptyContents.Error())
		return nil, ErrEmptyContents
	}

	if w.nopMode {
		w.logger.Info("nop mode", zap.Any("send notification", body))

		// the response must read as accepted for callers that check Ok()
		return &onesignal.Response{ID: "nop-mode", StatusCode: 200}, nil
	}

	timerCancel := w.metric.NewIOTimer()
	resp, err := w.transport.Send(ctx, body)
	timerCancel()

	if err != nil {
		w.metric.FailsInc()
		w.logger.Error("failed to send", zap.Error(err))
		return nil, err
	}

	if !resp.Ok() {
		w.metric.FailsInc()
		sendErr := &onesignal.SendError{
			StatusCode: resp.StatusCode,
			Messages:   resp.ErrorMessages(),
		}
		w.logger.Error("refused by service", zap.Error(sendErr))
		return resp, sendErr
	}

	w.metric.SuccessInc()
	w.logger.Info("success send",
		zap.String("id", resp.ID),
		zap.Int("recipients", resp.Recipients))

	return resp, nil
}
