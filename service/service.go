package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/dilshat/sms-notify/model"
	"github.com/dilshat/sms-notify/poll"
	"github.com/dilshat/sms-notify/sms"
	"github.com/dilshat/sms-notify/util"
)

const previewLen = 30

type InvalidPayloadErr struct {
	message string
}

func (e *InvalidPayloadErr) Error() string {
	return e.message
}

func NewInvalidPayloadError(msg string) *InvalidPayloadErr {
	return &InvalidPayloadErr{message: msg}
}

// Service submits one sms message and reports its final delivery status.
type Service interface {
	Notify(ctx context.Context, text string) (string, error)
}

type service struct {
	gateway       sms.Gateway
	poller        poll.Poller
	logger        *zap.Logger
	httpClient    *http.Client
	from          string
	to            string
	messageMaxLen int
	webhook       string
}

func NewService(gateway sms.Gateway, poller poll.Poller, logger *zap.Logger, from, to string, messageMaxLen int, webhook string) Service {
	return &service{
		gateway:       gateway,
		poller:        poller,
		logger:        logger,
		from:          from,
		to:            to,
		messageMaxLen: messageMaxLen,
		webhook:       webhook,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify validates the message, submits it once and polls the gateway for
// the delivery outcome. Submission failure is mapped to the send_error
// sentinel status; a status fetch failure is returned to the caller.
func (s *service) Notify(ctx context.Context, text string) (string, error) {

	//overall message validation
	if util.IsBlank(text) {
		return "", NewInvalidPayloadError("Empty message")
	}
	if util.IsBlank(s.from) {
		return "", NewInvalidPayloadError("Empty from number")
	}
	if util.IsBlank(s.to) {
		return "", NewInvalidPayloadError("Empty recipient number")
	}

	//check max length of sms
	if len([]rune(text)) > s.messageMaxLen {
		return "", NewInvalidPayloadError("Message too long. Must be <= " + strconv.Itoa(s.messageMaxLen) + " symbols in length")
	}

	preview := util.Truncate(text, previewLen)

	msg, err := s.gateway.Submit(ctx, s.from, s.to, text)
	if err != nil {
		s.logger.Warn("There was a problem when sending sms message",
			zap.String("message", preview), zap.Error(err))
		s.callWebhook(model.SEND_ERROR, text)
		return model.SEND_ERROR, nil
	}

	status, err := s.poller.WaitForDelivery(ctx, msg.Sid)
	if err != nil {
		s.logger.Warn("Error checking message delivery",
			zap.String("message", preview), zap.Error(err))
		return status, err
	}

	if status == model.DELIVERED {
		s.logger.Info("Successfully sent message", zap.String("message", preview))
	} else {
		s.logger.Warn("Issue sending message",
			zap.String("message", preview), zap.String("status", status))
	}

	s.callWebhook(status, text)

	return status, nil
}

type webhookPayload struct {
	To     string `json:"to"`
	Status string `json:"status"`
	Text   string `json:"text"`
}

func (s *service) callWebhook(status, text string) {
	if util.IsBlank(s.webhook) {
		return
	}

	body, err := json.Marshal(webhookPayload{To: s.to, Status: status, Text: text})
	if err != nil {
		s.logger.Error("Error encoding webhook payload", zap.Error(err))
		return
	}

	req, err := http.NewRequest("POST", s.webhook, bytes.NewBuffer(body))
	if err != nil {
		s.logger.Error("Error calling web hook", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Error calling web hook", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if !(resp.StatusCode >= 200 && resp.StatusCode <= 202) {
		s.logger.Warn("Webhook returned unexpected status", zap.String("status", resp.Status))
	}
}
