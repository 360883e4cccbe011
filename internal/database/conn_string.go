package database

import (
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/rickgao/playerdata-source/internal/config"
)

// BuildDSN builds a MySQL data source name from config.
func BuildDSN(cfg config.DBConfig) string {
	return mysqlConfig(cfg).FormatDSN()
}

// mysqlConfig maps DBConfig onto the driver's config. DATETIME columns are
// decoded as UTC time.Time values.
func mysqlConfig(cfg config.DBConfig) *mysql.Config {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc
}
