package utils

import (
	"strings"

	"VideoTube.com/config"
)

func GetMysqlDsn() string {
	mysql := config.ConfigInfo.Mysql
	dsn := strings.Join([]string{mysql.Username, ":", mysql.Password, "@tcp(", mysql.Addr, ")/",
		mysql.Database, "?charset=" + mysql.Charset + "&parseTime=true&loc=Local"}, "") //nolint:lll

	return dsn
}
