package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig
	DB            DBConfig
	JWT           JWTConfig
	Announcements AnnouncementsConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

type JWTConfig struct {
	Secret      string
	ExpireHours int
}

type AnnouncementsConfig struct {
	// 清除過期公告的間隔（分鐘）
	SweepMinutes int
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	// 未在配置文件中指定時使用的預設值
	viper.SetDefault("jwt.expirehours", 240)
	viper.SetDefault("announcements.sweepminutes", 60)

	// 允許用環境變量覆蓋配置文件中的設置
	// 巢狀鍵以底線對應，例如 server.address 對應 SERVER_ADDRESS
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
