package handler

// Texts shown to visitors in toasts and error bodies.
const (
    msgSubmitted       = "თქვენი შეტყობინება წარმატებით გაიგზავნა"
    msgSubmitFailed    = "დაფიქსირდა შეცდომა. გთხოვთ სცადოთ მოგვიანებით"
    msgFormError       = "გთხოვთ შეავსოთ ყველა სავალდებულო ველი"
    msgAddedToCart     = "დაემატა კალათაში"
    msgRemovedFromCart = "წაიშალა კალათიდან"
)
