package email

import (
	"fmt"
	"time"
)

// Template wraps a message body in the storefront mail frame.
func Template(title, body string) string {
	return fmt.Sprintf(`
  <div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
    <h2 style="color: #6b46c1;">%s</h2>
    <div style="font-size: 16px; color: #333;">
      %s
    </div>
    <footer style="margin-top: 20px; font-size: 12px; color: #999;">
      &copy; %d CoffeeStore. Всі права захищені.
    </footer>
  </div>
  `, title, body, time.Now().Year())
}

// VerificationBody builds the email-confirmation message. The link is valid
// for 24 hours.
func VerificationBody(name, verificationURL string) string {
	return Template("Підтвердження електронної адреси", fmt.Sprintf(`
      <p>Привіт %s!</p>
      <p>Дякуємо за реєстрацію в CoffeeStore.</p>
      <p>Будь ласка, підтвердіть вашу електронну адресу, перейшовши за посиланням:</p>
      <a href="%s" style="background-color: #6b46c1; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Підтвердити email</a>
      <p>Це посилання дійсне протягом 24 годин.</p>
    `, name, verificationURL))
}

// PasswordResetBody builds the reset message. The link is valid for 1 hour.
func PasswordResetBody(name, resetURL string) string {
	return Template("Скидання паролю", fmt.Sprintf(`
      <p>Привіт %s!</p>
      <p>Ви запросили скидання паролю для вашого акаунту в CoffeeStore.</p>
      <p>Будь ласка, перейдіть за посиланням для скидання паролю:</p>
      <a href="%s" style="background-color: #6b46c1; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Скинути пароль</a>
      <p>Це посилання дійсне протягом 1 години.</p>
      <p>Якщо ви не запитували скидання паролю, ігноруйте цей лист.</p>
    `, name, resetURL))
}
