package initial

import (
	"LiveDesk/internal/config"
	chatEntity "LiveDesk/internal/modules/chat/domain/entity"
	etiquetteEntity "LiveDesk/internal/modules/etiquette/domain/entity"
	inboxEntity "LiveDesk/internal/modules/inbox/domain/entity"
	widgetEntity "LiveDesk/internal/modules/widget/domain/entity"
	"LiveDesk/pkg/zlog"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var GormDB *gorm.DB

func init() {
	conf := config.GetConfig()
	user := conf.MysqlConfig.User
	password := conf.MysqlConfig.Password
	host := conf.MysqlConfig.Host
	port := conf.MysqlConfig.Port
	database := conf.MysqlConfig.DatabaseName
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", user, password, host, port, database)
	var err error
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	GormDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		zlog.Fatal(err.Error())
	}
	err = GormDB.AutoMigrate(
		&chatEntity.Conversation{},
		&chatEntity.Message{},
		&inboxEntity.Inbox{},
		&etiquetteEntity.Etiquette{},
		&etiquetteEntity.ConversationEtiquette{},
		&widgetEntity.WidgetSettings{},
	)
	if err != nil {
		zlog.Fatal(err.Error())
	}
}
