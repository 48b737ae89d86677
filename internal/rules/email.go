package rules

// BlockedEmailPrefixes reject generic/shared inboxes.
var BlockedEmailPrefixes = []string{
	"info@", "hello@", "owner@", "ceo@", "founder@", "contact@", "support@",
	"team@", "admin@", "office@", "mail@", "connect@", "help@", "hi@",
	"welcome@", "inquiries@", "general@", "feedback@", "ask@", "outreach@",
	"communications@", "crew@", "staff@", "community@", "reachus@", "talk@", "service@",
}

// FreeEmailDomains reject personal free-mail providers.
var FreeEmailDomains = map[string]bool{
	"gmail.com": true, "googlemail.com": true, "yahoo.com": true, "yahoo.co.uk": true, "yahoo.fr": true,
	"outlook.com": true, "hotmail.com": true, "live.com": true, "msn.com": true, "aol.com": true, "mail.com": true,
	"protonmail.com": true, "proton.me": true, "icloud.com": true, "me.com": true, "mac.com": true,
	"zoho.com": true, "yandex.com": true, "gmx.com": true, "mail.ru": true,
}

// DisposableEmailDomains reject throwaway inbox providers.
var DisposableEmailDomains = map[string]bool{
	"tempmail.com": true, "temp-mail.org": true, "guerrillamail.com": true, "mailinator.com": true,
	"throwaway.email": true, "10minutemail.com": true, "fakeinbox.com": true, "trashmail.com": true,
	"maildrop.cc": true, "getnada.com": true, "yopmail.com": true, "sharklasers.com": true,
	"dispostable.com": true, "mailnesia.com": true, "tempail.com": true, "tempr.email": true,
}
