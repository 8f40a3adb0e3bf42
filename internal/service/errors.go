package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid    = errors.New("参数错误")
	ErrUserNotFound    = errors.New("用户不存在")
	ErrWritingNotFound = errors.New("作品不存在")
	ErrCommentEmpty    = errors.New("评论内容不能为空")
	ErrFollowSelf      = errors.New("不能关注自己")
	ErrNoSelection     = errors.New("请先选中一段文本")
	ErrStaleSelection  = errors.New("选区已失效，请重新选择")
	ErrGrammarService  = errors.New("语法检查服务暂不可用，请稍后重试")
	UnExpectedError    = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrUserNotFound:    NotFound,
	ErrWritingNotFound: NotFound,
	ErrCommentEmpty:    BadRequest,
	ErrFollowSelf:      BadRequest,
	ErrNoSelection:     BadRequest,
	ErrStaleSelection:  Conflict,
	ErrGrammarService:  BadGateway,
	UnExpectedError:    InternalServerError,
}
