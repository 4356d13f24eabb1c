package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Resend-совместимого почтового API
// Отправляет подтверждение заявителю и уведомление администратору
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	adminEmail string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(baseURL, apiKey, from, adminEmail string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		from:       from,
		adminEmail: adminEmail,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendConfirmation отправляет письма по созданному бронированию:
// подтверждение заявителю, затем уведомление администратору
//
// Сбой любой отправки не влияет на бронирование - оно уже зафиксировано в
// хранилище. Ошибки собираются и возвращаются вызывающей стороне только для
// логирования
func (c *Client) SendConfirmation(ctx context.Context, booking *domain.Booking) error {
	formattedDate := booking.BookingDate.Format("Monday, January 2, 2006")
	displayTime := booking.StartTime.Display()

	var errs []error

	customerSubject := fmt.Sprintf("Discovery Call Confirmed - %s at %s", formattedDate, displayTime)
	if err := c.sendEmail(ctx, booking.Email, customerSubject, customerEmailHTML(booking, formattedDate, displayTime)); err != nil {
		c.log.Error("SendConfirmation: customer email to %s failed: %v", booking.Email, err)
		errs = append(errs, err)
	} else {
		c.log.Info("SendConfirmation: customer email sent to %s", booking.Email)
	}

	adminSubject := fmt.Sprintf("New Discovery Call Booked - %s at %s", formattedDate, displayTime)
	if err := c.sendEmail(ctx, c.adminEmail, adminSubject, adminEmailHTML(booking, formattedDate, displayTime)); err != nil {
		c.log.Error("SendConfirmation: admin notification to %s failed: %v", c.adminEmail, err)
		errs = append(errs, err)
	} else {
		c.log.Info("SendConfirmation: admin notification sent to %s", c.adminEmail)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, errors.Join(errs...))
	}

	return nil
}

// sendEmail отправляет одно письмо через POST /emails
func (c *Client) sendEmail(ctx context.Context, to, subject, html string) error {
	payload, err := json.Marshal(sendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/emails"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var result sendEmailResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		return nil
	}

	body, _ := io.ReadAll(resp.Body)

	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("%w: status %d: %s", ErrDeliveryFailed, resp.StatusCode, apiErr.Message)
	}

	return fmt.Errorf("%w: unexpected status code %d: %s", ErrDeliveryFailed, resp.StatusCode, string(body))
}
