package webdev

// Service exposes the resolved configuration to consumers that need the
// values rather than the wired components
type Service interface {
	JwtConfigurationInfo() JwtConfigurationInfo
	CorsConfigurationInfo() CorsConfigurationInfo
}

// DefaultService serves copies of one ResolvedConfig
type DefaultService struct {
	resolved ResolvedConfig
}

var _ Service = (*DefaultService)(nil)

// NewService creates the facade over an already resolved configuration
func NewService(resolved ResolvedConfig) *DefaultService {
	resolved.CORS = resolved.CORS.clone()
	return &DefaultService{resolved: resolved}
}

// JwtConfigurationInfo returns the JWT configuration snapshot
func (s *DefaultService) JwtConfigurationInfo() JwtConfigurationInfo {
	return s.resolved.JWT
}

// CorsConfigurationInfo returns the CORS configuration snapshot
func (s *DefaultService) CorsConfigurationInfo() CorsConfigurationInfo {
	return s.resolved.CORS.clone()
}
