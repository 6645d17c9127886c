package config

import "github.com/gin-gonic/gin"

// Environment represents the runtime environment
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

func (e Environment) IsProduction() bool {
	return e == EnvProduction
}

// GinMode maps the environment onto the matching gin mode.
func (e Environment) GinMode() string {
	if e.IsProduction() {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}
