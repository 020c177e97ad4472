package main

import (
	"gametable/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.TimetableEntryModel{},
		model.PartyModel{},
		model.PartyParticipantModel{},
		model.AuditLogModel{},
		model.NotificationPreferenceModel{},
		model.PanelNotificationModel{},
		model.UserDeviceModel{},
		model.GameServerModel{},
		model.ServerMemberModel{},
		model.FriendshipModel{},
		model.TokenBlacklistModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
