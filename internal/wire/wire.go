//go:build wireinject
// +build wireinject

package wire

import (
	"eduverse/internal/chat/handler"
	"eduverse/internal/chat/repository"
	"eduverse/internal/chat/service"
	"eduverse/internal/config"
	"eduverse/internal/dbmysql"
	"eduverse/internal/user"

	"github.com/google/wire"
)

func InitializeApplication() (*Application, error) {
	wire.Build(
		config.Load,
		dbmysql.NewMySQL,
		provideTokenManager,
		repository.NewConversationRepository,
		repository.NewParticipantRepository,
		repository.NewJoinRequestRepository,
		repository.NewMessageRepository,
		repository.NewReactionRepository,
		repository.NewReadReceiptRepository,
		repository.NewPinRepository,
		user.NewUserRepository,
		user.NewFollowRepository,
		service.NewMembershipService,
		service.NewMessageService,
		service.NewReactionService,
		service.NewReadReceiptService,
		service.NewPinService,
		handler.NewChatHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
