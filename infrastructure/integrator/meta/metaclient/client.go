package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-backoffice-api/internal/config"
	"github.com/vfg2006/meta-backoffice-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request descreve uma chamada ao Graph. O token sempre vai na query string, inclusive nos POSTs.
type Request struct {
	Method      string
	Path        string
	Params      url.Values
	Body        url.Values
	AccessToken string
}

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
type Client interface {
	Call(ctx context.Context, req Request) ([]byte, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Meta.RequestTimeout},
	}
}

// Call executa a requisição sem retentativas. Qualquer falha volta como *metadomain.GraphAPIError.
func (c *MetaClient) Call(ctx context.Context, req Request) ([]byte, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"method":           method,
		log.GraphPathField: req.Path,
	})

	var body io.Reader
	if req.Body != nil {
		body = strings.NewReader(req.Body.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.BuildURL(req), body)
	if err != nil {
		logger.WithError(err).Error("meta: erro ao criar a requisição")
		return nil, genericFailure(err)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	httpReq.Header.Set("Accept", "application/json")

	logger.Debug("meta: enviando requisição")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		logger.WithError(err).Error("meta: erro ao fazer a requisição")
		return nil, genericFailure(err)
	}
	defer resp.Body.Close()

	return c.HandleResponse(logger, resp)
}

// HandleResponse lê o corpo e classifica erros do Graph
func (c *MetaClient) HandleResponse(logger log.Logger, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Error("meta: erro ao ler resposta")
		return nil, genericFailure(err)
	}

	isSuccess := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !isSuccess || metadomain.HasGraphError(body) {
		errorReturn := metadomain.ParseGraphError(body)

		fields := log.Fields{"status_code": resp.StatusCode, "mapped_status": errorReturn.StatusCode}
		if errorReturn.Data != nil {
			fields["meta_code"] = errorReturn.Data.Code
			fields["fbtrace_id"] = errorReturn.Data.FBTraceID
		}
		logger.WithFields(fields).Error("meta: resposta de erro da API")

		return nil, metadomain.NewGraphAPIError(errorReturn, fmt.Errorf("meta: status %d", resp.StatusCode))
	}

	if !json.Valid(body) {
		logger.Error("meta: resposta com JSON inválido")
		return nil, genericFailure(fmt.Errorf("meta: invalid json response"))
	}

	return body, nil
}

// BuildURL monta {host}/{versão}/{path}?{params}&access_token=...
func (c *MetaClient) BuildURL(req Request) string {
	params := url.Values{}
	for key, values := range req.Params {
		params[key] = append([]string(nil), values...)
	}
	if req.AccessToken != "" {
		params.Set("access_token", req.AccessToken)
	}

	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, strings.TrimPrefix(req.Path, "/"))
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	return endpoint
}

func genericFailure(cause error) error {
	return metadomain.NewGraphAPIError(metadomain.GraphErrorReturn{
		StatusCode: metadomain.GenericError.HTTPStatusCode,
		Reason:     metadomain.GenericError,
	}, cause)
}
