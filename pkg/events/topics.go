package events

// Topics form the wire contract between the application state, the
// orchestration layer and the views.
const (
	TopicCatalogChanged            = "catalog-changed"
	TopicCardSelected              = "card-selected"
	TopicAddToBasket               = "add-to-basket"
	TopicBasketOpen                = "basket-open"
	TopicBasketItemDeleted         = "basket-item-deleted"
	TopicBasketOrder               = "basket-order"
	TopicOrderSubmitStep           = "order-submit-step"
	TopicOrderFormErrorsChanged    = "order-form-errors-changed"
	TopicContactsFormErrorsChanged = "contacts-form-errors-changed"
	TopicOrderFieldChanged         = "order-field-changed"
	TopicContactsReady             = "contacts-ready"
	TopicOrderReady                = "order-ready"
	TopicContactsSubmit            = "contacts-submit"
	TopicOrderSuccess              = "order-success"
	TopicModalClose                = "modal-close"
)
