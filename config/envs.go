package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP             string  // Host IP for the server
	RESTPort           int     // Port for the REST API
	GinMode            string  // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr          string  // Redis address for the size store, empty for in-memory
	RedisPassword      string  // Password for Redis
	RedisDB            int     // Redis database index
	RedisSizeKey       string  // Key holding the last maze size
	MongoURI           string  // MongoDB connection string, empty for in-memory level records
	DBName             string  // Name of the database
	LevelCollection    string  // Collection for completed levels
	DefaultMazeSize    int     // Size used when no size was saved yet
	MinMazeSize        int     // Smallest size "smaller" can reach
	MazeAspectRatio    float64 // Maze columns per row
	VisibilityEnabled  bool    // New sessions start with occlusion culling on
	VisibilityMaxSteps int     // Intercept cap of one visibility sweep
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:             getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:           getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:            getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:          getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:      getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsIntWithDefault("REDIS_DB", 0),
		RedisSizeKey:       getEnvWithDefault("REDIS_SIZE_KEY", "maze:last_size"),
		MongoURI:           getEnvWithDefault("MONGO_URI", ""),
		DBName:             getEnvWithDefault("DB_NAME", "vinom_maze"),
		LevelCollection:    getEnvWithDefault("LEVEL_COLLECTION", "levels"),
		DefaultMazeSize:    getEnvAsIntWithDefault("DEFAULT_MAZE_SIZE", 10),
		MinMazeSize:        getEnvAsIntWithDefault("MIN_MAZE_SIZE", 10),
		MazeAspectRatio:    getEnvAsFloatWithDefault("MAZE_ASPECT_RATIO", 1),
		VisibilityEnabled:  getEnvAsBoolWithDefault("VISIBILITY_ENABLED", false),
		VisibilityMaxSteps: getEnvAsIntWithDefault("VISIBILITY_MAX_STEPS", 512),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses an integer variable, logging a fatal error when it is malformed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
