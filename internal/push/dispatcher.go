package push

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
)

const (
	oneSignalEndpoint = "https://api.onesignal.com/notifications"
	androidChannelID  = "emergency-alerts"
	emergencySound    = "emergency_alert"
)

// Dispatcher отправляет push-уведомления двумя путями: через OneSignal
// (по player id подписки) и через устаревший web-push шлюз (по типу цели).
// Оба пути опциональны: при отсутствии настроек отправка пропускается.
type Dispatcher struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewDispatcher создает новый Dispatcher
func NewDispatcher(cfg *config.Config, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.PushTimeout,
		},
		logger: logger,
	}
}

type oneSignalRequest struct {
	AppID            string            `json:"app_id"`
	IncludePlayerIDs []string          `json:"include_player_ids"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
	Data             map[string]any    `json:"data,omitempty"`
	AndroidChannelID string            `json:"android_channel_id"`
	Priority         int               `json:"priority"`
	AndroidSound     string            `json:"android_sound,omitempty"`
	IOSSound         string            `json:"ios_sound,omitempty"`
}

type oneSignalResponse struct {
	ID         string `json:"id"`
	Recipients int    `json:"recipients"`
	Errors     any    `json:"errors"`
}

// SendToPlayers отправляет push через OneSignal на перечисленные player id.
// Возвращает число получателей по данным OneSignal.
func (d *Dispatcher) SendToPlayers(ctx context.Context, playerIDs []string, msg models.PushMessage) (int, error) {
	if d.cfg.OneSignalAppID == "" || d.cfg.OneSignalAPIKey == "" {
		d.logger.WithFields(logrus.Fields{"service": "push"}).Debug("OneSignal is not configured, skipping push")
		return 0, nil
	}
	if len(playerIDs) == 0 {
		return 0, nil
	}

	req := oneSignalRequest{
		AppID:            d.cfg.OneSignalAppID,
		IncludePlayerIDs: playerIDs,
		Headings:         map[string]string{"en": msg.Title},
		Contents:         map[string]string{"en": msg.Body},
		Data:             msg.Data,
		AndroidChannelID: androidChannelID,
		Priority:         5,
	}
	if msg.Important {
		req.Priority = 10
		req.AndroidSound = emergencySound
		req.IOSSound = emergencySound
	}

	body, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal onesignal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, oneSignalEndpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create onesignal request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", oneSignalAuthHeader(d.cfg.OneSignalAPIKey))

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("onesignal request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("onesignal returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed oneSignalResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		// статус успешный, но тело нечитаемо: считаем доставленным без счетчика
		return len(playerIDs), nil
	}
	if parsed.Errors != nil {
		d.logger.WithFields(logrus.Fields{
			"service": "push",
			"errors":  parsed.Errors,
		}).Warn("OneSignal reported partial errors")
	}
	return parsed.Recipients, nil
}

// oneSignalAuthHeader выбирает схему авторизации по формату ключа:
// ключи v2 (префикс os_v2_app_) используют схему Key, остальные - Basic.
func oneSignalAuthHeader(apiKey string) string {
	if strings.HasPrefix(apiKey, "os_v2_app_") {
		return "Key " + apiKey
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":"))
}

type webPushRequest struct {
	Target      string         `json:"target"`
	UserID      string         `json:"user_id,omitempty"`
	ResponderID string         `json:"responder_id,omitempty"`
	Payload     webPushPayload `json:"payload"`
}

type webPushPayload struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// SendWebPush отправляет уведомление через устаревший web-push шлюз.
// targetType - тип цели (user, responder), targetID - идентификатор цели.
func (d *Dispatcher) SendWebPush(ctx context.Context, targetType, targetID string, msg models.PushMessage) error {
	if d.cfg.PushGatewayURL == "" {
		d.logger.WithFields(logrus.Fields{"service": "push"}).Debug("web push gateway is not configured, skipping push")
		return nil
	}

	req := webPushRequest{
		Target: targetType,
		Payload: webPushPayload{
			Title: msg.Title,
			Body:  msg.Body,
			Data:  msg.Data,
		},
	}
	if targetType == "responder" {
		req.ResponderID = targetID
	} else {
		req.UserID = targetID
	}
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal web push request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.PushGatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create web push request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if d.cfg.PushGatewayToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+d.cfg.PushGatewayToken)
	}

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("web push request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("web push gateway returned status %d", resp.StatusCode)
	}
	return nil
}
