package config

// SafeErrorMessage 生产环境（release 模式）下隐藏内部错误详情，只返回 fallback；
// 开发环境返回原始错误信息，方便排查问题
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
