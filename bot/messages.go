package bot

// Fixed reply texts shown on the chat surface.
const (
	welcomeText = "🤖 สวัสดีครับ! ยินดีต้อนรับสู่ AI Health Scanner\n\n📋 วิธีใช้งาน:\n1. ส่งรูปผลตรวจสุขภาพมา\n2. ถามคำถามเกี่ยวกับผลตรวจ\n3. AI จะวิเคราะห์และตอบคำถาม\n\n🔬 ระบบใช้ Claude AI\n💡 รองรับภาษาไทย\n\nส่งรูปผลตรวจมาเพื่อเริ่มต้นเลย!"

	imageReceivedText = "✅ รับรูปผลตรวจสุขภาพเรียบร้อยแล้ว!\n\n🤖 AI พร้อมวิเคราะห์รูปของคุณแล้ว\n\nคุณสามารถถามคำถามได้เลย เช่น:\n• \"ค่าน้ำตาลเท่าไหร่?\"\n• \"ผลตรวจเป็นยังไง?\"\n• \"มีค่าผิดปกติไหม?\"\n• \"แปลผลให้หน่อย\""

	imageErrorText = "ขออภัยครับ เกิดข้อผิดพลาดในการประมวลผลรูป กรุณาลองส่งรูปใหม่อีกครั้ง"

	clearedText = "🗑️ ลบข้อมูลเรียบร้อยแล้ว\nส่งรูปผลตรวจใหม่เพื่อเริ่มต้นใหม่"

	noImageText = "📷 กรุณาส่งรูปผลตรวจสุขภาพมาก่อนครับ\n\nจากนั้นจึงถามคำถามเกี่ยวกับผลตรวจได้"

	aiErrorText = "ขออภัยครับ เกิดข้อผิดพลาดในการวิเคราะห์ กรุณาลองใหม่อีกครั้ง"

	answerPrefix     = "🤖 "
	answerDisclaimer = "\n\n---\n⚠️ ข้อมูลนี้เป็นเพียงการแปลผลเบื้องต้น กรุณาปรึกษาแพทย์เพื่อการวินิจฉัยที่แม่นยำ"
)
