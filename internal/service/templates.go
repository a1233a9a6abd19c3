package service

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

// contactMailData feeds the operator notification templates. MessageHTML is
// sanitized before being marked safe, so the HTML template keeps the
// visitor's line breaks without re-escaping entities.
type contactMailData struct {
	Name        string
	Email       string
	Phone       string
	TypeLabel   string
	Message     string
	MessageHTML htmltemplate.HTML
}

type confirmationMailData struct {
	Name string
}

var contactNotificationHTML = htmltemplate.Must(htmltemplate.New("contact_notification").Parse(`<div style="font-family: 'Inter', Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f5f0;">
  <div style="background-color: white; border-radius: 12px; padding: 32px;">
    <h1 style="color: #D4764B; font-family: 'Cormorant Garamond', Georgia, serif; font-size: 28px; margin-bottom: 24px; border-bottom: 2px solid #D4764B; padding-bottom: 12px;">Nouveau Message de Contact</h1>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td style="padding: 8px 0; color: #8B4513; font-weight: 600;">Nom:</td><td style="padding: 8px 0; color: #333;">{{.Name}}</td></tr>
      <tr><td style="padding: 8px 0; color: #8B4513; font-weight: 600;">Email:</td><td style="padding: 8px 0;"><a href="mailto:{{.Email}}" style="color: #D4764B; text-decoration: none;">{{.Email}}</a></td></tr>
{{- if .Phone}}
      <tr><td style="padding: 8px 0; color: #8B4513; font-weight: 600;">Téléphone:</td><td style="padding: 8px 0; color: #333;">{{.Phone}}</td></tr>
{{- end}}
      <tr><td style="padding: 8px 0; color: #8B4513; font-weight: 600;">Type:</td><td style="padding: 8px 0; color: #333;">{{.TypeLabel}}</td></tr>
    </table>
    <h2 style="color: #5C3D2E; font-size: 18px; margin: 24px 0 12px;">Message</h2>
    <div style="background-color: #f9f5f0; padding: 16px; border-radius: 8px; border-left: 4px solid #D4764B;">
      <p style="color: #333; line-height: 1.6; margin: 0; white-space: pre-wrap;">{{.MessageHTML}}</p>
    </div>
    <div style="text-align: center; padding-top: 20px; border-top: 1px solid #e5e5e5; margin-top: 24px;">
      <a href="mailto:{{.Email}}" style="display: inline-block; background-color: #D4764B; color: white; padding: 12px 32px; border-radius: 6px; text-decoration: none; font-weight: 600;">Répondre à {{.Name}}</a>
    </div>
  </div>
</div>`))

var contactNotificationText = texttemplate.Must(texttemplate.New("contact_notification_text").Parse(`Nouveau message de contact

Nom: {{.Name}}
Email: {{.Email}}
{{- if .Phone}}
Téléphone: {{.Phone}}
{{- end}}
Type d'accompagnement: {{.TypeLabel}}

Message:
{{.Message}}
`))

var contactConfirmationHTML = htmltemplate.Must(htmltemplate.New("contact_confirmation").Parse(`<div style="font-family: 'Inter', Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f5f0;">
  <div style="background-color: white; border-radius: 12px; padding: 32px;">
    <h1 style="color: #D4764B; font-family: 'Cormorant Garamond', Georgia, serif; font-size: 28px; margin-bottom: 16px;">Merci pour votre message !</h1>
    <p style="color: #333; line-height: 1.6; margin-bottom: 16px;">Bonjour {{.Name}},</p>
    <p style="color: #333; line-height: 1.6; margin-bottom: 16px;">J'ai bien reçu votre message et je vous en remercie. Je m'engage à vous répondre dans les plus brefs délais, généralement sous 24 à 48 heures.</p>
    <p style="color: #333; line-height: 1.6; margin-bottom: 24px;">En attendant, n'hésitez pas à consulter mes ressources sur le site.</p>
    <div style="text-align: center; margin: 32px 0;">
      <div style="display: inline-block; background-color: #f9f5f0; padding: 20px; border-radius: 8px; border: 2px solid #D4764B;">
        <p style="color: #8B4513; font-weight: 600; margin: 0;">💛 Prenez soin de vous 💛</p>
      </div>
    </div>
    <div style="text-align: center; padding-top: 20px; border-top: 1px solid #e5e5e5; font-size: 14px; color: #666;">
      <p>Accompagnement Post-Partum</p>
      <p>Nantes</p>
    </div>
  </div>
</div>`))

var contactConfirmationText = texttemplate.Must(texttemplate.New("contact_confirmation_text").Parse(`Bonjour {{.Name}},

J'ai bien reçu votre message et je vous en remercie. Je m'engage à vous répondre dans les plus brefs délais, généralement sous 24 à 48 heures.

En attendant, n'hésitez pas à consulter mes ressources sur le site.

Prenez soin de vous,

Accompagnement Post-Partum
Nantes
`))

var newsletterWelcomeHTML = htmltemplate.Must(htmltemplate.New("newsletter_welcome").Parse(`<div style="font-family: 'Inter', Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f5f0;">
  <div style="background-color: white; border-radius: 12px; padding: 32px;">
    <h1 style="color: #D4764B; font-family: 'Cormorant Garamond', Georgia, serif; font-size: 28px; margin-bottom: 16px;">Bienvenue ! ✨</h1>
    <p style="color: #333; line-height: 1.6; margin-bottom: 16px;">Merci de vous être inscrit à notre newsletter !</p>
    <p style="color: #333; line-height: 1.6; margin-bottom: 16px;">Vous recevrez désormais nos conseils, astuces et actualités directement dans votre boîte mail. Nous partageons régulièrement des informations sur l'accompagnement post-partum, la parentalité bienveillante et le bien-être des mamans.</p>
    <div style="text-align: center; margin: 32px 0;">
      <div style="display: inline-block; background-color: #f9f5f0; padding: 20px; border-radius: 8px; border: 2px solid #D4764B;">
        <p style="color: #8B4513; font-weight: 600; margin: 0;">💛 Prenez soin de vous 💛</p>
      </div>
    </div>
    <div style="text-align: center; padding-top: 20px; border-top: 1px solid #e5e5e5; font-size: 14px; color: #666;">
      <p>Accompagnement Post-Partum</p>
      <p>Nantes</p>
    </div>
  </div>
</div>`))

var newsletterWelcomeText = texttemplate.Must(texttemplate.New("newsletter_welcome_text").Parse(`Merci de vous être inscrit à notre newsletter !

Vous recevrez désormais nos conseils, astuces et actualités directement dans votre boîte mail. Nous partageons régulièrement des informations sur l'accompagnement post-partum, la parentalité bienveillante et le bien-être des mamans.

Prenez soin de vous,

Accompagnement Post-Partum
Nantes
`))

var newsletterOperatorText = texttemplate.Must(texttemplate.New("newsletter_operator_text").Parse(`Nouvelle inscription à la newsletter

Email: {{.Email}}
`))
