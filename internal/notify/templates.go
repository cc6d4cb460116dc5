package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Princeaman007/interships/internal/i18n"
)

const layout = `<div style="font-family:Arial,sans-serif;max-width:600px;margin:auto;color:#222">
{{template "body" .}}
<p style="margin-top:32px;color:#777">{{.Signature}}</p>
</div>`

var bodies = map[Kind]map[i18n.Lang]string{
	EmailVerification: {
		i18n.FR: `<p>Bonjour {{.Name}},</p>
<p>Merci pour votre inscription. Cliquez sur le lien ci-dessous pour vérifier votre adresse email :</p>
<p><a href="{{.Link}}">Vérifier mon email</a></p>
<p>Ce lien expire dans 24 heures.</p>`,
		i18n.EN: `<p>Hello {{.Name}},</p>
<p>Thank you for registering. Click the link below to verify your email address:</p>
<p><a href="{{.Link}}">Verify my email</a></p>
<p>This link expires in 24 hours.</p>`,
	},
	ApplicationSubmitted: {
		i18n.FR: `<p>Bonjour {{.Name}},</p>
<p>Votre candidature pour le stage <strong>{{.InternshipTitle}}</strong> a bien été reçue.</p>
<p>Nous vous tiendrons informé(e) de son évolution.</p>`,
		i18n.EN: `<p>Hello {{.Name}},</p>
<p>Your application for the internship <strong>{{.InternshipTitle}}</strong> has been received.</p>
<p>We will keep you posted on its progress.</p>`,
	},
	ApplicationAccepted: {
		i18n.FR: `<p>Félicitations {{.Name}} !</p>
<p>Votre candidature pour le stage <strong>{{.InternshipTitle}}</strong> a été acceptée.</p>
<p>Notre équipe vous contactera prochainement pour la suite.</p>`,
		i18n.EN: `<p>Congratulations {{.Name}}!</p>
<p>Your application for the internship <strong>{{.InternshipTitle}}</strong> has been accepted.</p>
<p>Our team will contact you shortly about next steps.</p>`,
	},
	ApplicationRejected: {
		i18n.FR: `<p>Bonjour {{.Name}},</p>
<p>Nous sommes au regret de vous informer que votre candidature pour le stage <strong>{{.InternshipTitle}}</strong> n'a pas été retenue.</p>
<p>N'hésitez pas à postuler à d'autres offres.</p>`,
		i18n.EN: `<p>Hello {{.Name}},</p>
<p>We regret to inform you that your application for the internship <strong>{{.InternshipTitle}}</strong> was not selected.</p>
<p>Feel free to apply to other offers.</p>`,
	},
	ContactReply: {
		i18n.FR: `<p>Bonjour {{.Name}},</p>
<p>Voici notre réponse à votre message « {{.Subject}} » :</p>
<blockquote>{{.Reply}}</blockquote>`,
		i18n.EN: `<p>Hello {{.Name}},</p>
<p>Here is our reply to your message "{{.Subject}}":</p>
<blockquote>{{.Reply}}</blockquote>`,
	},
}

var subjectKeys = map[Kind]string{
	EmailVerification:    "email.verify.subject",
	ApplicationSubmitted: "email.submitted.subject",
	ApplicationAccepted:  "email.accepted.subject",
	ApplicationRejected:  "email.rejected.subject",
	ContactReply:         "email.contact_reply.subject",
}

var signatures = map[i18n.Lang]string{
	i18n.FR: "L'équipe Plateforme Stage",
	i18n.EN: "The Plateforme Stage team",
}

// Renderer holds the parsed templates for every (kind, language) pair.
type Renderer struct {
	templates map[Kind]map[i18n.Lang]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[Kind]map[i18n.Lang]*template.Template, len(bodies))}
	for kind, byLang := range bodies {
		r.templates[kind] = make(map[i18n.Lang]*template.Template, len(byLang))
		for lang, body := range byLang {
			t, err := template.New(string(kind)).Parse(layout)
			if err != nil {
				return nil, fmt.Errorf("parse layout: %w", err)
			}
			if _, err := t.New("body").Parse(body); err != nil {
				return nil, fmt.Errorf("parse %s/%s: %w", kind, lang, err)
			}
			r.templates[kind][lang] = t
		}
	}
	return r, nil
}

type view struct {
	Event
	Signature string
}

// Render produces the localized email for ev.
func (r *Renderer) Render(ev Event) (Message, error) {
	lang := ev.Lang
	if !lang.Valid() {
		lang = i18n.Default
	}
	t, ok := r.templates[ev.Kind][lang]
	if !ok {
		return Message{}, fmt.Errorf("no template for %q", ev.Kind)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, view{Event: ev, Signature: signatures[lang]}); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", ev.Kind, err)
	}
	return Message{
		To:      ev.To,
		Subject: i18n.T(lang, subjectKeys[ev.Kind]),
		HTML:    buf.String(),
	}, nil
}
