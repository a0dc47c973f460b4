// Package models contains GORM database models for infrastructure layer.
// These models handle database persistence and are separated from domain entities
// so the domain packages stay free of ORM tags.
package models

// All returns every model for schema migration.
func All() []interface{} {
	return []interface{}{
		&UserModel{}, &DeviceTokenModel{}, &UserTokenModel{}, &AccessTokenModel{}, &RefreshTokenModel{},
		&UserHobbyModel{}, &UserInterestModel{}, &UserLanguageModel{}, &UserAnswerModel{},
		&FavouriteEventModel{}, &NotificationModel{},
		&EventModel{}, &EventRSVPModel{}, &EventMediaModel{}, &EventSectionModel{}, &EventCategoryMappingModel{},
		&EventCommentModel{}, &EventSwipeModel{}, &EventMatchModel{},
		&CurrencyModel{}, &TicketModel{}, &PurchasedTicketModel{}, &PurchasedTicketQRModel{}, &SharedTicketModel{},
		&EventPayoutModel{},
		&UserReportModel{}, &ContactMessageModel{}, &DemoRequestModel{},
		&EventCategoryModel{}, &HobbyModel{}, &InterestModel{}, &LanguageModel{}, &QuestionModel{},
		&CountryModel{}, &FeatureModel{}, &SMSDeliveryLogModel{}, &ExceptionLogModel{}, &RequestLogModel{},
	}
}
