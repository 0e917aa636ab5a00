package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tablelink/restaurant-backend/internal/config"
	"github.com/tablelink/restaurant-backend/pkg/logger"
)

// SMSService talks to the SENS-style messaging API. When no service id
// is configured it runs in demo mode: delivery is simulated after a
// short delay instead of failing hard.
type SMSService struct {
	serviceID    string
	accessKey    string
	secretKey    string
	senderNumber string
	client       *http.Client
}

func NewSMSService(cfg *config.Config) *SMSService {
	return &SMSService{
		serviceID:    cfg.SMSServiceID,
		accessKey:    cfg.SMSAccessKey,
		secretKey:    cfg.SMSSecretKey,
		senderNumber: cfg.SMSSenderNumber,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

const smsDemoDelay = 500 * time.Millisecond

type smsMessage struct {
	To string `json:"to"`
}

type smsRequestBody struct {
	Type        string       `json:"type"`
	From        string       `json:"from"`
	Content     string       `json:"content"`
	Messages    []smsMessage `json:"messages"`
	CountryCode string       `json:"countryCode"`
}

type smsResponseBody struct {
	RequestID  string `json:"requestId"`
	StatusCode string `json:"statusCode"`
	StatusName string `json:"statusName"`
}

func (s *SMSService) configured() bool {
	return s.serviceID != "" && s.accessKey != "" && s.secretKey != "" && s.senderNumber != ""
}

// signature builds the provider's request signature:
// base64(HMAC-SHA256(secret, "POST <uri>\n<timestamp>\n<accessKey>")).
func (s *SMSService) signature(uri, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(s.secretKey))
	fmt.Fprintf(mac, "POST %s\n%s\n%s", uri, timestamp, s.accessKey)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (s *SMSService) SendSMS(to, content string) error {
	if !s.configured() {
		// Demo mode keeps the reservation flow working in local and
		// staging environments without provider credentials.
		logger.Warn("SMS provider not configured, simulating delivery to ", to)
		time.Sleep(smsDemoDelay)
		return nil
	}

	uri := fmt.Sprintf("/sms/v2/services/%s/messages", s.serviceID)
	url := "https://sens.apigw.ntruss.com" + uri
	timestamp := fmt.Sprintf("%d", time.Now().UnixMilli())

	body := smsRequestBody{
		Type:        "SMS",
		From:        s.senderNumber,
		Content:     content,
		Messages:    []smsMessage{{To: to}},
		CountryCode: "82",
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode SMS request: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("x-ncp-apigw-timestamp", timestamp)
	req.Header.Set("x-ncp-iam-access-key", s.accessKey)
	req.Header.Set("x-ncp-apigw-signature-v2", s.signature(uri, timestamp))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("SMS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("SMS provider returned status: %d", resp.StatusCode)
	}

	var result smsResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode SMS response: %w", err)
	}

	logger.Info("SMS accepted, request id: ", result.RequestID)
	return nil
}
