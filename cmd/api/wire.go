//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/campuschat/server/core"
	"github.com/campuschat/server/x/auth"
	"github.com/campuschat/server/x/key"
	"github.com/campuschat/server/x/member"
	"github.com/campuschat/server/x/message"
	"github.com/campuschat/server/x/room"
	"github.com/campuschat/server/x/util"
)

var authServiceProvider = wire.NewSet(auth.NewService, key.NewService, key.NewRepository, member.NewService, member.NewRepository)
var memberHandlerProvider = wire.NewSet(member.NewHandler, authServiceProvider)
var keyHandlerProvider = wire.NewSet(key.NewHandler, key.NewService, key.NewRepository, member.NewService, member.NewRepository)
var messageServiceProvider = wire.NewSet(message.NewService, message.NewRepository, authServiceProvider)
var messageHandlerProvider = wire.NewSet(message.NewHandler, messageServiceProvider)
var roomHandlerProvider = wire.NewSet(room.NewHandler, room.NewService, room.NewRepository, messageServiceProvider)

func SetupMemberHandler(db *gorm.DB, mc *memcache.Client, mailSender core.MailSender, config util.Config) member.Handler {
	wire.Build(memberHandlerProvider)
	return nil
}

func SetupKeyHandler(db *gorm.DB, mc *memcache.Client, mailSender core.MailSender, config util.Config) key.Handler {
	wire.Build(keyHandlerProvider)
	return nil
}

func SetupMessageService(db *gorm.DB, mc *memcache.Client, mailSender core.MailSender, notification core.NotificationService, config util.Config) core.MessageService {
	wire.Build(messageServiceProvider)
	return nil
}

func SetupMessageHandler(db *gorm.DB, mc *memcache.Client, mailSender core.MailSender, notification core.NotificationService, config util.Config) message.Handler {
	wire.Build(messageHandlerProvider)
	return nil
}

func SetupRoomHandler(db *gorm.DB, mc *memcache.Client, mailSender core.MailSender, notification core.NotificationService, config util.Config) room.Handler {
	wire.Build(roomHandlerProvider)
	return nil
}
