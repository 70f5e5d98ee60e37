package utils

import (
	"elimunova/config"
	"fmt"
	"log"
	"net/smtp"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = "587"
)

func sendEmail(to, subject, body string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Printf("Email not configured, skipping mail to %s (%s)", to, subject)
		return nil
	}

	header := fmt.Sprintf("Subject: %s\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n", subject)
	message := []byte(header + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}

	log.Println("Email sent successfully to", to)
	return nil
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, userName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Welcome to Elimunova!</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 14px; color: #555555;">Your account is ready. Browse our free courses and start learning today.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Thank you for joining Elimunova.</p>
				</div>
			</body>
		</html>
	`, userName)

	return sendEmail(email, "Welcome to Elimunova", body)
}

// SendEnrollmentEmail sends an email notification when a student enrolls in a course
func SendEnrollmentEmail(email, userName, courseTitle string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment Confirmed</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 14px; color: #555555;">You are now enrolled in <strong>%s</strong>. Your first lesson is waiting for you.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Happy learning!</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle)

	return sendEmail(email, fmt.Sprintf("You are enrolled in %s", courseTitle), body)
}

// SendInstructorDigestEmail mails an instructor their weekly course summary
func SendInstructorDigestEmail(email, userName string, rows string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Your Weekly Course Summary</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<table style="width: 100%%; font-size: 14px; color: #555555; border-collapse: collapse;">
						<tr style="text-align: left; border-bottom: 1px solid #eeeeee;">
							<th style="padding: 6px;">Course</th>
							<th style="padding: 6px;">Enrollments</th>
							<th style="padding: 6px;">Completion</th>
						</tr>
						%s
					</table>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Elimunova instructor digest</p>
				</div>
			</body>
		</html>
	`, userName, rows)

	return sendEmail(email, "Your weekly Elimunova summary", body)
}
