package config

type SecurityConfig struct {
	AdminToken         string   `yaml:"admin_token"`
	JWTSecret          string   `yaml:"jwt_secret"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	TrustedProxies     []string `yaml:"trusted_proxies"`
}

func loadSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		AdminToken:         getEnv("ADMIN_TOKEN", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
	}
}
