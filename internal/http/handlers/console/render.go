package console

import (
	"errors"
	"net/http"

	"github.com/tcc-console/internal/authz"
	"github.com/tcc-console/internal/http/handlers/shared"
	"github.com/tcc-console/internal/http/response"
	"github.com/tcc-console/internal/http/views"
	"github.com/tcc-console/internal/service"
	"github.com/tcc-console/internal/tccapi"

	"github.com/gin-gonic/gin"
)

// render 输出页面，JSON 调用方拿到统一响应信封
// pageErr 非空时表示页面数据加载失败，页面只展示错误信息。
func render(c *gin.Context, name string, data views.Data, pageErr string) {
	data.Viewer = viewerFrom(c)
	if !shared.WantsJSON(c) {
		c.HTML(http.StatusOK, name, data)
		return
	}
	if pageErr != "" {
		response.ErrorWithData(c, response.CodeBadGateway, pageErr, data.Page)
		return
	}
	response.Success(c, jsonPayload(data))
}

// renderForm 表单提交失败后带错误信息重新渲染
func renderForm(c *gin.Context, name string, data views.Data, err error) {
	data.FormError = service.SubmitErrorMessage(err)
	if shared.WantsJSON(c) {
		code := submitErrorCode(err)
		if code == response.CodeBadGateway {
			shared.RespondErrorWithMsg(c, code, data.FormError, err)
			return
		}
		shared.RequestLog(c).Warnw("console_submit_failed", "page", name, "error", err)
		response.Error(c, code, data.FormError)
		return
	}
	data.Viewer = viewerFrom(c)
	c.HTML(http.StatusOK, name, data)
}

// redirect 成功后跳转，JSON 调用方收到跳转地址与结果
func redirect(c *gin.Context, code int, location string, result interface{}) {
	if shared.WantsJSON(c) {
		response.SuccessWithMsg(c, "redirect", gin.H{
			"location": location,
			"result":   result,
		})
		return
	}
	c.Redirect(code, location)
}

func jsonPayload(data views.Data) interface{} {
	if data.Page != nil {
		return data.Page
	}
	payload := gin.H{"form": data.Form}
	if data.Branches != nil {
		payload["branches"] = data.Branches
	}
	if data.BranchError != "" {
		payload["branch_error"] = data.BranchError
	}
	if data.Choices != nil {
		payload["choices"] = data.Choices
	}
	return payload
}

func submitErrorCode(err error) int {
	var formErr *service.FormError
	var apiErr *tccapi.APIError
	switch {
	case errors.As(err, &formErr):
		return response.CodeBadRequest
	case errors.Is(err, service.ErrQuickActionForbidden), errors.Is(err, authz.ErrProtectedPolicy):
		return response.CodeForbidden
	case errors.Is(err, service.ErrUnknownQuickAction):
		return response.CodeNotFound
	case errors.Is(err, service.ErrNoTruckForQuickAction), errors.Is(err, service.ErrBranchRequired):
		return response.CodeBadRequest
	case errors.Is(err, service.ErrNoAccessToken):
		return response.CodeUnauthorized
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		return apiErr.Status
	default:
		return response.CodeBadGateway
	}
}

// bindError 将绑定失败转为表单错误
func bindError(c *gin.Context, err error) error {
	shared.RequestLog(c).Debugw("console_bind_failed", "error", err)
	return &service.FormError{Message: "Invalid form submission."}
}
