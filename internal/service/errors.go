package service

import (
	"errors"
)

// 业务错误哨兵，handler按errors.Is映射到HTTP状态码
var (
	// ErrUserExists 用户名已被占用
	ErrUserExists = errors.New("用户名已存在")
	// ErrInvalidCredentials 登录失败，不区分用户不存在和密码错误
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	// ErrPasswordMismatch 修改密码时旧密码不正确
	ErrPasswordMismatch = errors.New("旧密码错误")
	// ErrTargetNotFound 学习目标不存在
	ErrTargetNotFound = errors.New("学习目标不存在")
	// ErrForbidden 操作他人拥有的资源
	ErrForbidden = errors.New("无权操作此学习目标")
	// ErrNoteExists 同名笔记已存在
	ErrNoteExists = errors.New("文件已存在")
	// ErrNoteNotFound 笔记不存在或不属于当前用户
	ErrNoteNotFound = errors.New("文件不存在或无权限")
)
