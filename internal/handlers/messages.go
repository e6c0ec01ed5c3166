package handlers

import (
	"fmt"

	"github.com/studydimension/ytdl-bot/pkg/utils"
	"github.com/studydimension/ytdl-bot/pkg/ytdlp"
)

const attribution = "📚 Made by Study Dimension"

const ownerWelcomeText = "🎉 Welcome! You are now the OWNER of this bot.\n\n" +
	"✅ Commands available:\n" +
	"• Send a YouTube link to download\n" +
	"• /broadcast <message> - Send message to all users\n\n" +
	"🎵 Supported formats: MP3 (audio) and MP4 (video)"

const welcomeText = "👋 Welcome to YouTube Downloader Bot!\n\n" +
	"📱 How to use:\n" +
	"1. Send me a YouTube link\n" +
	"2. Choose MP3 (audio) or MP4 (video)\n" +
	"3. Download and enjoy!\n\n" +
	"🔗 Supported links:\n" +
	"• youtube.com/watch?v=...\n" +
	"• youtu.be/..."

const helpText = "🤖 YouTube Downloader Bot Help\n\n" +
	"📱 Commands:\n" +
	"• /start - Start the bot\n" +
	"• /help - Show this help\n" +
	"• /mp3 - Download as audio (after sending link)\n" +
	"• /mp4 - Download as video (after sending link)\n\n" +
	"👑 Owner Commands:\n" +
	"• /broadcast <message> - Send message to all users\n\n" +
	"📝 How to use:\n" +
	"1. Send a YouTube link\n" +
	"2. Choose MP3 or MP4 format\n" +
	"3. Wait for download and upload\n\n" +
	"⚠️ Limitations:\n" +
	"• Video files must be under 50MB\n" +
	"• Only YouTube links are supported"

const invalidLinkText = "❌ Invalid Link\n\n" +
	"Please send a valid YouTube link:\n" +
	"• https://youtube.com/watch?v=...\n" +
	"• https://youtu.be/..."

const noActiveSessionText = "❌ No video selected. Send a YouTube link first."

const downloadBusyText = "⏳ A download is already running for you. Wait for it to finish."

const accessDeniedText = "❌ Access Denied: Only the owner can use this command."

const broadcastUsageText = "❌ Usage: /broadcast <your message>\n\n" +
	"Example: /broadcast Hello everyone! Bot is updated."

const broadcastPrefix = "📢 Broadcast from Owner:\n\n"

const fileTooLargeText = "❌ File too large (>50MB)\n\n" +
	"Try downloading audio instead with /mp3"

const audioNotFoundText = "❌ Audio download failed."

const videoNotFoundText = "❌ Video download failed or file too large (>50MB)."

func videoFoundText(meta *ytdlp.Metadata) string {
	return fmt.Sprintf(
		"🎞️ Video Found!\n\n"+
			"📝 Title: %s\n"+
			"⏱️ Duration: %s\n"+
			"👀 Views: %s\n\n"+
			"📥 Choose download format:\n"+
			"• /mp3 - Audio only (MP3)\n"+
			"• /mp4 - Video with audio (MP4)",
		utils.TruncateTitle(meta.Title),
		utils.FormatDuration(meta.DurationSeconds()),
		utils.FormatViews(meta.ViewCount),
	)
}

func resolveFailedText(err error) string {
	return fmt.Sprintf("❌ Error processing video: %v", err)
}

func downloadFailedText(err error) string {
	return fmt.Sprintf("❌ Download failed: %v", err)
}

func deliveryFailedText(err error) string {
	return fmt.Sprintf("❌ Upload failed: %v", err)
}

func broadcastFailedText(err error) string {
	return fmt.Sprintf("❌ Broadcast Error: %v", err)
}

func broadcastReportText(sent, failed int) string {
	return fmt.Sprintf(
		"✅ Broadcast Complete!\n\n"+
			"📊 Statistics:\n"+
			"• Sent: %d, Failed: %d",
		sent, failed)
}

func mediaCaption(icon, title, url string) string {
	return fmt.Sprintf("%s %s\n🔗 %s\n\n%s", icon, title, url, attribution)
}
