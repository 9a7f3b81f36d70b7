package access

import "fmt"

// verificationEmailHTML renders the branded verification email. Inline styles
// only; email clients ignore everything else.
func verificationEmailHTML(firstName, verifyURL, tagline string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Verify to View the Headless Markets Pitch Deck</title>
</head>
<body style="margin: 0; padding: 0; background-color: #000000; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #000000; padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px;">
          <tr>
            <td style="padding-bottom: 32px;">
              <span style="color: #FFFFFF; font-size: 20px; font-weight: 600;">Headless Markets</span>
              <span style="color: #83D6C5; font-size: 10px; font-weight: 500; background-color: rgba(131, 214, 197, 0.1); padding: 4px 8px; border-radius: 4px; margin-left: 8px; border: 1px solid rgba(131, 214, 197, 0.2);">PITCH DECK ACCESS</span>
            </td>
          </tr>
          <tr>
            <td style="background-color: #0A0A0A; border: 1px solid #262626; border-radius: 12px; padding: 40px;">
              <h1 style="color: #FFFFFF; font-size: 24px; font-weight: 600; margin: 0 0 16px 0;">Hi %[1]s,</h1>
              <p style="color: #A0A0A0; font-size: 16px; line-height: 1.6; margin: 0 0 24px 0;">
                Thank you for your interest in <strong style="color: #FFFFFF;">Headless Markets Protocol</strong>.
                Click below to verify your email and instantly view our pitch deck:
              </p>
              <table cellpadding="0" cellspacing="0" style="margin: 32px 0;">
                <tr>
                  <td style="background-color: #83D6C5; border-radius: 8px;">
                    <a href="%[2]s" style="display: inline-block; padding: 16px 40px; color: #000000; text-decoration: none; font-weight: 600; font-size: 16px;">View Headless Markets Pitch Deck</a>
                  </td>
                </tr>
              </table>
              <p style="color: #606060; font-size: 14px; margin: 24px 0 0 0;">This verification link expires in 24 hours.</p>
              <p style="color: #606060; font-size: 12px; margin: 16px 0 0 0; word-break: break-all;">Or copy this URL: %[2]s</p>
            </td>
          </tr>
          <tr>
            <td style="padding-top: 32px; text-align: center;">
              <p style="color: #606060; font-size: 12px; margin: 0;">Headless Markets Protocol</p>
              <p style="color: #83D6C5; font-size: 12px; margin: 8px 0 0 0; font-style: italic;">%[3]s</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, firstName, verifyURL, tagline)
}
